package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() CreateRecipeRequest {
	return CreateRecipeRequest{
		Name:        "Pancakes",
		Text:        "Mix and fry.",
		CookingTime: 20,
		Tags:        []uuid.UUID{uuid.New()},
		Ingredients: []IngredientLineRequest{
			{ID: uuid.New(), Amount: 200},
			{ID: uuid.New(), Amount: 2},
		},
	}
}

func TestCreateRecipeRequest_Valid(t *testing.T) {
	require.NoError(t, validRequest().Validate())
}

func TestCreateRecipeRequest_CookingTimeBounds(t *testing.T) {
	req := validRequest()
	req.CookingTime = 0
	assert.Error(t, req.Validate())

	req.CookingTime = 301
	assert.Error(t, req.Validate())

	req.CookingTime = 1
	assert.NoError(t, req.Validate())

	req.CookingTime = 300
	assert.NoError(t, req.Validate())
}

func TestCreateRecipeRequest_AmountBounds(t *testing.T) {
	req := validRequest()
	req.Ingredients[0].Amount = 0
	assert.Error(t, req.Validate())

	req.Ingredients[0].Amount = 5001
	assert.Error(t, req.Validate())

	req.Ingredients[0].Amount = 5000
	assert.NoError(t, req.Validate())
}

func TestCreateRecipeRequest_RejectsDuplicateIngredients(t *testing.T) {
	req := validRequest()
	req.Ingredients[1].ID = req.Ingredients[0].ID

	assert.Error(t, req.Validate())
}

func TestCreateRecipeRequest_RejectsDuplicateTags(t *testing.T) {
	req := validRequest()
	tagID := uuid.New()
	req.Tags = []uuid.UUID{tagID, tagID}

	assert.Error(t, req.Validate())
}

func TestCreateRecipeRequest_RequiresTagsAndIngredients(t *testing.T) {
	req := validRequest()
	req.Tags = nil
	assert.Error(t, req.Validate())

	req = validRequest()
	req.Ingredients = nil
	assert.Error(t, req.Validate())
}

func TestCreateRecipeRequest_RejectsNilIDs(t *testing.T) {
	req := validRequest()
	req.Ingredients[0].ID = uuid.Nil
	assert.Error(t, req.Validate())

	req = validRequest()
	req.Tags = []uuid.UUID{uuid.Nil}
	assert.Error(t, req.Validate())
}
