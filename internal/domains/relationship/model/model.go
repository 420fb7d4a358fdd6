package model

import (
	"github.com/google/uuid"

	recipemodel "recipehub-backend/internal/domains/recipe/model"
)

// Kind selects which user-to-recipe ledger an operation targets.
type Kind string

const (
	KindFavorite Kind = "favorite"
	KindCart     Kind = "cart"
)

// Followee is one row of a user's subscription list: the followed
// author's profile, how many recipes they have published, and a preview
// of their newest recipes.
type Followee struct {
	ID           uuid.UUID             `json:"id"`
	Email        string                `json:"email"`
	Username     string                `json:"username"`
	FirstName    string                `json:"first_name"`
	LastName     string                `json:"last_name"`
	Avatar       string                `json:"avatar,omitempty"`
	IsSubscribed bool                  `json:"is_subscribed"`
	RecipesCount int                   `json:"recipes_count"`
	Recipes      []recipemodel.Summary `json:"recipes"`
}
