package model

import "errors"

// Repository-level errors
var (
	ErrRecipeNotFound     = errors.New("recipe not found")
	ErrRecipeNameTaken    = errors.New("you already have a recipe with this name")
	ErrShortCodeCollision = errors.New("short code already in use")
	ErrUnknownIngredient  = errors.New("recipe references an unknown ingredient")
	ErrUnknownTag         = errors.New("recipe references an unknown tag")
)

// Service-level errors
var (
	ErrNotRecipeAuthor = errors.New("only the recipe author can modify it")
)
