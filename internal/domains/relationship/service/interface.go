package service

import (
	"context"

	"github.com/google/uuid"

	recipemodel "recipehub-backend/internal/domains/recipe/model"
	"recipehub-backend/internal/domains/relationship/model"
)

type ServiceInterface interface {
	AddFavorite(ctx context.Context, userID, recipeID uuid.UUID) (*recipemodel.Summary, error)
	RemoveFavorite(ctx context.Context, userID, recipeID uuid.UUID) error
	AddToCart(ctx context.Context, userID, recipeID uuid.UUID) (*recipemodel.Summary, error)
	RemoveFromCart(ctx context.Context, userID, recipeID uuid.UUID) error

	// recipesLimit caps the recipe previews embedded per followee;
	// recipesLimit <= 0 embeds all of them.
	Subscribe(ctx context.Context, followerID, followeeID uuid.UUID, recipesLimit int) (*model.Followee, error)
	Unsubscribe(ctx context.Context, followerID, followeeID uuid.UUID) error
	ListSubscriptions(ctx context.Context, userID uuid.UUID, page, limit, recipesLimit int) ([]model.Followee, int, error)
}
