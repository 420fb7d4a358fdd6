package service

import (
	"context"

	"github.com/google/uuid"

	"recipehub-backend/internal/domains/ingredient/model"
)

type ServiceInterface interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Ingredient, error)
	Search(ctx context.Context, name string) ([]model.Ingredient, error)
	BulkImport(ctx context.Context, inputs []model.IngredientInput) (int, error)
}
