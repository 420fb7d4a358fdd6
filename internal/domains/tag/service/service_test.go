package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipehub-backend/internal/domains/tag/model"
)

type stubTagRepo struct {
	created []*model.Tag
}

func (s *stubTagRepo) Create(_ context.Context, tag *model.Tag) error {
	s.created = append(s.created, tag)
	return nil
}

func (s *stubTagRepo) GetByID(_ context.Context, _ uuid.UUID) (*model.Tag, error) {
	return nil, model.ErrTagNotFound
}

func (s *stubTagRepo) List(_ context.Context) ([]model.Tag, error) { return nil, nil }

func (s *stubTagRepo) ExistAll(_ context.Context, _ []uuid.UUID) (bool, error) { return true, nil }

func TestCreate_DerivesSlugAndColor(t *testing.T) {
	repo := &stubTagRepo{}
	svc := NewTagService(repo)

	tag, err := svc.Create(context.Background(), model.CreateTagRequest{Name: "Quick Breakfast"})

	require.NoError(t, err)
	assert.Equal(t, "quick-breakfast", tag.Slug)
	assert.Equal(t, "#49B64E", tag.Color)
	require.Len(t, repo.created, 1)
}

func TestCreate_KeepsExplicitSlugAndColor(t *testing.T) {
	repo := &stubTagRepo{}
	svc := NewTagService(repo)

	tag, err := svc.Create(context.Background(), model.CreateTagRequest{
		Name:  "Dinner",
		Slug:  "supper",
		Color: "#FF0000",
	})

	require.NoError(t, err)
	assert.Equal(t, "supper", tag.Slug)
	assert.Equal(t, "#FF0000", tag.Color)
}

func TestCreate_InvalidRequest(t *testing.T) {
	repo := &stubTagRepo{}
	svc := NewTagService(repo)

	_, err := svc.Create(context.Background(), model.CreateTagRequest{Name: ""})

	assert.Error(t, err)
	assert.Empty(t, repo.created)
}
