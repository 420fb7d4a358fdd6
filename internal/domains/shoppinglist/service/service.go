package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"recipehub-backend/internal/domains/shoppinglist/model"
	"recipehub-backend/internal/domains/shoppinglist/repository"
)

type shoppingListService struct {
	listRepo repository.ShoppingListRepository
}

func NewShoppingListService(listRepo repository.ShoppingListRepository) ServiceInterface {
	return &shoppingListService{listRepo: listRepo}
}

func (s *shoppingListService) BuildList(ctx context.Context, userID uuid.UUID) ([]model.Item, error) {
	lines, err := s.listRepo.CartLines(ctx, userID)
	if err != nil {
		return nil, err
	}
	return Aggregate(lines), nil
}

type groupKey struct {
	name string
	unit string
}

// Aggregate folds raw cart lines into one item per (name, unit) pair.
// Names compare case-insensitively for grouping but keep their first-seen
// spelling for display. Totals are int64 so a cart full of 5000-unit
// amounts cannot overflow.
func Aggregate(lines []model.Line) []model.Item {
	totals := make(map[groupKey]*model.Item)
	var order []groupKey

	for _, line := range lines {
		key := groupKey{name: strings.ToLower(line.Name), unit: line.MeasurementUnit}
		if item, ok := totals[key]; ok {
			item.Total += int64(line.Amount)
			continue
		}
		totals[key] = &model.Item{
			Name:            line.Name,
			MeasurementUnit: line.MeasurementUnit,
			Total:           int64(line.Amount),
		}
		order = append(order, key)
	}

	items := make([]model.Item, 0, len(order))
	for _, key := range order {
		items = append(items, *totals[key])
	}
	sort.Slice(items, func(i, j int) bool {
		ni, nj := strings.ToLower(items[i].Name), strings.ToLower(items[j].Name)
		if ni != nj {
			return ni < nj
		}
		return items[i].MeasurementUnit < items[j].MeasurementUnit
	})
	return items
}

func (s *shoppingListService) RenderText(items []model.Item) string {
	var b strings.Builder
	b.WriteString("Shopping list:\n")
	for _, item := range items {
		fmt.Fprintf(&b, "- %s (%s) — %d\n", item.Name, item.MeasurementUnit, item.Total)
	}
	return b.String()
}
