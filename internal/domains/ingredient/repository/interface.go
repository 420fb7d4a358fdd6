package repository

import (
	"context"

	"github.com/google/uuid"

	"recipehub-backend/internal/domains/ingredient/model"
)

type IngredientRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Ingredient, error)
	// Search lists catalog entries matching name (prefix matches ranked
	// before substring matches). Empty search lists everything.
	Search(ctx context.Context, name string) ([]model.Ingredient, error)
	// BulkCreate inserts rows, skipping (name, unit) pairs that already
	// exist. Returns the number of rows actually inserted.
	BulkCreate(ctx context.Context, ingredients []model.Ingredient) (int, error)
	// ExistAll reports whether every given ID references an ingredient.
	ExistAll(ctx context.Context, ids []uuid.UUID) (bool, error)
}
