package repository

import (
	"context"

	"github.com/google/uuid"

	"recipehub-backend/internal/domains/shoppinglist/model"
)

// ShoppingListRepository reads the raw material for a user's shopping
// list. CartLines returns one line per (recipe in cart, ingredient) pair;
// the single-statement read is a consistent snapshot even while recipes
// are edited concurrently.
type ShoppingListRepository interface {
	CartLines(ctx context.Context, userID uuid.UUID) ([]model.Line, error)
}
