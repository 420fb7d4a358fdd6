package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"recipehub-backend/internal/domains/ingredient/model"
	"recipehub-backend/internal/domains/ingredient/repository"
)

type ingredientService struct {
	ingredientRepo repository.IngredientRepository
}

func NewIngredientService(ingredientRepo repository.IngredientRepository) ServiceInterface {
	return &ingredientService{ingredientRepo: ingredientRepo}
}

func (s *ingredientService) GetByID(ctx context.Context, id uuid.UUID) (*model.Ingredient, error) {
	return s.ingredientRepo.GetByID(ctx, id)
}

func (s *ingredientService) Search(ctx context.Context, name string) ([]model.Ingredient, error) {
	return s.ingredientRepo.Search(ctx, name)
}

// BulkImport validates and loads catalog rows. Existing (name, unit) pairs
// are skipped so repeated imports of the same dataset are idempotent.
func (s *ingredientService) BulkImport(ctx context.Context, inputs []model.IngredientInput) (int, error) {
	ingredients := make([]model.Ingredient, 0, len(inputs))
	for i, input := range inputs {
		if err := input.Validate(); err != nil {
			return 0, fmt.Errorf("row %d: %w", i+1, err)
		}
		ingredients = append(ingredients, model.Ingredient{
			ID:              uuid.New(),
			Name:            input.Name,
			MeasurementUnit: input.MeasurementUnit,
		})
	}

	return s.ingredientRepo.BulkCreate(ctx, ingredients)
}
