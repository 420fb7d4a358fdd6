package service

import (
	"context"

	"github.com/google/uuid"

	"recipehub-backend/internal/domains/recipe/model"
)

type ServiceInterface interface {
	Create(ctx context.Context, authorID uuid.UUID, req model.CreateRecipeRequest) (*model.Recipe, error)
	GetByID(ctx context.Context, viewerID, id uuid.UUID) (*model.Recipe, error)
	List(ctx context.Context, viewerID uuid.UUID, criteria model.ListCriteria) ([]*model.Recipe, int, error)
	Update(ctx context.Context, actorID, id uuid.UUID, req model.CreateRecipeRequest) (*model.Recipe, error)
	Delete(ctx context.Context, actorID uuid.UUID, isAdmin bool, id uuid.UUID) error
}

// CodeMinter produces candidate short codes for new recipes.
type CodeMinter interface {
	Generate() (string, error)
}

// LinkInvalidator drops a short code from the resolver cache after its
// recipe is deleted.
type LinkInvalidator interface {
	InvalidateCode(ctx context.Context, code string) error
}
