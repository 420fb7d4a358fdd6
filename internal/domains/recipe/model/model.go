package model

import (
	"time"

	"github.com/google/uuid"

	tagmodel "recipehub-backend/internal/domains/tag/model"
)

// Recipe is the central entity: authored content composed of catalog
// ingredients with per-recipe amounts, plus tags.
type Recipe struct {
	ID          uuid.UUID
	AuthorID    uuid.UUID
	Name        string
	Text        string
	CookingTime int
	Image       string
	ShortCode   string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Author      Author
	Tags        []tagmodel.Tag
	Ingredients []IngredientLine

	// Annotations relative to the viewing user; false for anonymous.
	IsFavorited      bool
	IsInShoppingCart bool
}

// IngredientLine is one (catalog ingredient, amount) pair of a recipe.
// Name and unit are denormalized from the catalog for display and
// aggregation.
type IngredientLine struct {
	IngredientID    uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	MeasurementUnit string    `json:"measurement_unit"`
	Amount          int       `json:"amount"`
}

// Author is the recipe author's public profile as embedded in recipe
// payloads.
type Author struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Avatar       string    `json:"avatar,omitempty"`
	IsSubscribed bool      `json:"is_subscribed"`
}

// Summary is the short recipe view returned by favorite/cart endpoints.
type Summary struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Image       string    `json:"image,omitempty"`
	CookingTime int       `json:"cooking_time"`
}
