package repository

import (
	"context"

	"github.com/google/uuid"

	"recipehub-backend/internal/domains/tag/model"
)

type TagRepository interface {
	Create(ctx context.Context, tag *model.Tag) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Tag, error)
	List(ctx context.Context) ([]model.Tag, error)
	// ExistAll reports whether every given ID references a tag.
	ExistAll(ctx context.Context, ids []uuid.UUID) (bool, error)
}
