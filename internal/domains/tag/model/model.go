package model

import "github.com/google/uuid"

// Tag is immutable reference data used to categorize recipes
// (breakfast, lunch, vegetarian, ...).
type Tag struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Slug  string    `json:"slug"`
	Color string    `json:"color"`
}
