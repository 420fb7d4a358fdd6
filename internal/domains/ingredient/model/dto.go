package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// IngredientInput is one row of a catalog import (CSV loader or admin API).
type IngredientInput struct {
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
}

func (r IngredientInput) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 128),
		),
		validation.Field(&r.MeasurementUnit,
			validation.Required.Error("measurement unit is required"),
			validation.Length(1, 64),
		),
	)
}
