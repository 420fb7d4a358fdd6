package model

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	tagmodel "recipehub-backend/internal/domains/tag/model"
)

const (
	MinCookingTime = 1
	MaxCookingTime = 300
	MinAmount      = 1
	MaxAmount      = 5000
)

type IngredientLineRequest struct {
	ID     uuid.UUID `json:"id" binding:"required"`
	Amount int       `json:"amount" binding:"required"`
}

// CreateRecipeRequest carries the full recipe payload. The same shape is
// used for updates: ingredient lines and tags replace the existing sets.
type CreateRecipeRequest struct {
	Name        string                  `json:"name" binding:"required"`
	Text        string                  `json:"text" binding:"required"`
	CookingTime int                     `json:"cooking_time" binding:"required"`
	Image       string                  `json:"image"`
	Tags        []uuid.UUID             `json:"tags" binding:"required"`
	Ingredients []IngredientLineRequest `json:"ingredients" binding:"required"`
}

func (r CreateRecipeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 256),
		),
		validation.Field(&r.Text,
			validation.Required.Error("text is required"),
		),
		validation.Field(&r.CookingTime,
			validation.Required.Error("cooking time is required"),
			validation.Min(MinCookingTime).Error("cooking time must be at least 1 minute"),
			validation.Max(MaxCookingTime).Error("cooking time must be at most 300 minutes"),
		),
		validation.Field(&r.Image,
			validation.Length(0, 2048),
		),
		validation.Field(&r.Tags,
			validation.Required.Error("at least one tag is required"),
			validation.By(noDuplicateTags),
		),
		validation.Field(&r.Ingredients,
			validation.Required.Error("at least one ingredient is required"),
			validation.By(validIngredientLines),
		),
	)
}

func noDuplicateTags(value interface{}) error {
	tags, _ := value.([]uuid.UUID)
	seen := make(map[uuid.UUID]struct{}, len(tags))
	for _, id := range tags {
		if id == uuid.Nil {
			return errors.New("tag id must not be empty")
		}
		if _, ok := seen[id]; ok {
			return errors.New("duplicate tag in recipe")
		}
		seen[id] = struct{}{}
	}
	return nil
}

func validIngredientLines(value interface{}) error {
	lines, _ := value.([]IngredientLineRequest)
	seen := make(map[uuid.UUID]struct{}, len(lines))
	for _, line := range lines {
		if line.ID == uuid.Nil {
			return errors.New("ingredient id must not be empty")
		}
		if line.Amount < MinAmount || line.Amount > MaxAmount {
			return errors.New("ingredient amount must be between 1 and 5000")
		}
		if _, ok := seen[line.ID]; ok {
			return errors.New("duplicate ingredient in recipe")
		}
		seen[line.ID] = struct{}{}
	}
	return nil
}

// ListCriteria is the filter configuration. Every option is optional;
// provided options compose with AND. Tag slugs OR-match: a recipe is
// included when it carries any of them.
type ListCriteria struct {
	TagSlugs    []string
	AuthorID    uuid.UUID // uuid.Nil = unset
	FavoritedBy uuid.UUID // uuid.Nil = unset
	InCartOf    uuid.UUID // uuid.Nil = unset
	Page        int
	Limit       int
}

type RecipeResponse struct {
	ID               uuid.UUID        `json:"id"`
	Author           Author           `json:"author"`
	Name             string           `json:"name"`
	Text             string           `json:"text"`
	CookingTime      int              `json:"cooking_time"`
	Image            string           `json:"image,omitempty"`
	Tags             []tagmodel.Tag   `json:"tags"`
	Ingredients      []IngredientLine `json:"ingredients"`
	IsFavorited      bool             `json:"is_favorited"`
	IsInShoppingCart bool             `json:"is_in_shopping_cart"`
	CreatedAt        time.Time        `json:"created_at"`
}

func (r *Recipe) ToResponse() RecipeResponse {
	tags := r.Tags
	if tags == nil {
		tags = []tagmodel.Tag{}
	}
	ingredients := r.Ingredients
	if ingredients == nil {
		ingredients = []IngredientLine{}
	}

	return RecipeResponse{
		ID:               r.ID,
		Author:           r.Author,
		Name:             r.Name,
		Text:             r.Text,
		CookingTime:      r.CookingTime,
		Image:            r.Image,
		Tags:             tags,
		Ingredients:      ingredients,
		IsFavorited:      r.IsFavorited,
		IsInShoppingCart: r.IsInShoppingCart,
		CreatedAt:        r.CreatedAt,
	}
}
