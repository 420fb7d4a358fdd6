package repository

import (
	"context"

	"github.com/google/uuid"

	"recipehub-backend/internal/domains/relationship/model"
)

// RelationshipRepository persists the three user-relation ledgers:
// favorites, shopping carts and subscriptions. Add and Remove are atomic;
// a concurrent duplicate Add fails with ErrAlreadyExists on exactly one
// side.
type RelationshipRepository interface {
	AddRecipeRelation(ctx context.Context, kind model.Kind, userID, recipeID uuid.UUID) error
	RemoveRecipeRelation(ctx context.Context, kind model.Kind, userID, recipeID uuid.UUID) error
	RecipeRelationExists(ctx context.Context, kind model.Kind, userID, recipeID uuid.UUID) (bool, error)
	ListRecipeIDs(ctx context.Context, kind model.Kind, userID uuid.UUID) ([]uuid.UUID, error)

	AddSubscription(ctx context.Context, followerID, followeeID uuid.UUID) error
	RemoveSubscription(ctx context.Context, followerID, followeeID uuid.UUID) error
	SubscriptionExists(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error)
	ListFollowees(ctx context.Context, followerID uuid.UUID, page, limit int) ([]model.Followee, int, error)
}
