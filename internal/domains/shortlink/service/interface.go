package service

import (
	"context"

	"github.com/google/uuid"
)

type ServiceInterface interface {
	// Generate mints a candidate short code. Uniqueness is enforced by the
	// caller's storage, not here.
	Generate() (string, error)
	// Resolve maps a short code back to its recipe ID.
	Resolve(ctx context.Context, code string) (uuid.UUID, error)
	// GetLink returns the absolute short URL for a recipe.
	GetLink(ctx context.Context, recipeID uuid.UUID) (string, error)
	// InvalidateCode drops a code from the resolver cache.
	InvalidateCode(ctx context.Context, code string) error
}
