package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipehub-backend/internal/domains/shoppinglist/model"
)

func TestAggregate_SumsAndSorts(t *testing.T) {
	lines := []model.Line{
		{Name: "flour", MeasurementUnit: "g", Amount: 200},
		{Name: "egg", MeasurementUnit: "шт", Amount: 1},
		{Name: "flour", MeasurementUnit: "g", Amount: 300},
	}

	items := Aggregate(lines)

	require.Len(t, items, 2)
	assert.Equal(t, model.Item{Name: "egg", MeasurementUnit: "шт", Total: 1}, items[0])
	assert.Equal(t, model.Item{Name: "flour", MeasurementUnit: "g", Total: 500}, items[1])
}

func TestAggregate_DoesNotMergeAcrossUnits(t *testing.T) {
	lines := []model.Line{
		{Name: "sugar", MeasurementUnit: "g", Amount: 500},
		{Name: "sugar", MeasurementUnit: "kg", Amount: 1},
	}

	items := Aggregate(lines)

	require.Len(t, items, 2)
	assert.Equal(t, "g", items[0].MeasurementUnit)
	assert.Equal(t, int64(500), items[0].Total)
	assert.Equal(t, "kg", items[1].MeasurementUnit)
	assert.Equal(t, int64(1), items[1].Total)
}

func TestAggregate_GroupsCaseInsensitively(t *testing.T) {
	lines := []model.Line{
		{Name: "Salt", MeasurementUnit: "g", Amount: 5},
		{Name: "salt", MeasurementUnit: "g", Amount: 10},
	}

	items := Aggregate(lines)

	require.Len(t, items, 1)
	// Display keeps the first-seen spelling.
	assert.Equal(t, "Salt", items[0].Name)
	assert.Equal(t, int64(15), items[0].Total)
}

func TestAggregate_Empty(t *testing.T) {
	items := Aggregate(nil)
	assert.Empty(t, items)
	assert.NotNil(t, items)
}

func TestAggregate_LargeTotalsDoNotOverflow(t *testing.T) {
	lines := make([]model.Line, 1000)
	for i := range lines {
		lines[i] = model.Line{Name: "rice", MeasurementUnit: "g", Amount: 5000}
	}

	items := Aggregate(lines)

	require.Len(t, items, 1)
	assert.Equal(t, int64(5_000_000), items[0].Total)
}

type stubListRepo struct {
	lines []model.Line
}

func (s *stubListRepo) CartLines(_ context.Context, _ uuid.UUID) ([]model.Line, error) {
	return s.lines, nil
}

func TestBuildList_EmptyCart(t *testing.T) {
	svc := NewShoppingListService(&stubListRepo{})

	items, err := svc.BuildList(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestRenderText(t *testing.T) {
	svc := NewShoppingListService(&stubListRepo{})

	text := svc.RenderText([]model.Item{
		{Name: "egg", MeasurementUnit: "шт", Total: 1},
		{Name: "flour", MeasurementUnit: "g", Total: 500},
	})

	assert.Equal(t, "Shopping list:\n- egg (шт) — 1\n- flour (g) — 500\n", text)
}

func TestRenderText_EmptyList(t *testing.T) {
	svc := NewShoppingListService(&stubListRepo{})

	assert.Equal(t, "Shopping list:\n", svc.RenderText(nil))
}
