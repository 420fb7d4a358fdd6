package model

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)
var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

type CreateTagRequest struct {
	Name  string `json:"name" binding:"required"`
	Slug  string `json:"slug"`
	Color string `json:"color"`
}

func (r CreateTagRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 32),
		),
		validation.Field(&r.Slug,
			validation.When(r.Slug != "",
				validation.Length(1, 32),
				validation.Match(slugPattern).Error("slug must contain only lowercase letters, digits and hyphens"),
			),
		),
		validation.Field(&r.Color,
			validation.When(r.Color != "",
				validation.Match(colorPattern).Error("color must be a hex value like #49B64E"),
			),
		),
	)
}
