package repository

import (
	"context"

	"github.com/google/uuid"

	"recipehub-backend/internal/domains/recipe/model"
)

// Filter narrows List results. Zero values mean "no constraint".
// ViewerID drives the is_favorited / is_in_shopping_cart / is_subscribed
// annotations and may be uuid.Nil for anonymous requests.
type Filter struct {
	TagSlugs    []string
	AuthorID    uuid.UUID
	FavoritedBy uuid.UUID
	InCartOf    uuid.UUID
	ViewerID    uuid.UUID
	Page        int
	Limit       int
}

type RecipeRepository interface {
	Create(ctx context.Context, recipe *model.Recipe, lines []model.IngredientLine, tagIDs []uuid.UUID) error
	GetByID(ctx context.Context, id, viewerID uuid.UUID) (*model.Recipe, error)
	GetByShortCode(ctx context.Context, code string) (uuid.UUID, error)
	GetShortCode(ctx context.Context, id uuid.UUID) (string, error)
	GetSummary(ctx context.Context, id uuid.UUID) (*model.Summary, error)
	List(ctx context.Context, filter Filter) ([]*model.Recipe, int, error)
	Update(ctx context.Context, recipe *model.Recipe, lines []model.IngredientLine, tagIDs []uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByAuthor(ctx context.Context, authorID uuid.UUID) (int, error)
	// SummariesByAuthor lists the author's recipes newest first.
	// limit <= 0 means no limit.
	SummariesByAuthor(ctx context.Context, authorID uuid.UUID, limit int) ([]model.Summary, error)
}
