package model

import "github.com/google/uuid"

// Ingredient is a catalog entry. Immutable after creation; recipes
// reference it together with a per-recipe amount.
type Ingredient struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	MeasurementUnit string    `json:"measurement_unit"`
}
