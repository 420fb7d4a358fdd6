package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ingredientmodel "recipehub-backend/internal/domains/ingredient/model"
	"recipehub-backend/internal/domains/recipe/model"
	"recipehub-backend/internal/domains/recipe/repository"
	tagmodel "recipehub-backend/internal/domains/tag/model"
)

type stubRepo struct {
	recipes   map[uuid.UUID]*model.Recipe
	usedCodes map[string]bool
}

func newStubRepo() *stubRepo {
	return &stubRepo{
		recipes:   map[uuid.UUID]*model.Recipe{},
		usedCodes: map[string]bool{},
	}
}

func (s *stubRepo) Create(_ context.Context, recipe *model.Recipe, lines []model.IngredientLine, _ []uuid.UUID) error {
	if s.usedCodes[recipe.ShortCode] {
		return model.ErrShortCodeCollision
	}
	stored := *recipe
	stored.Ingredients = lines
	s.recipes[recipe.ID] = &stored
	s.usedCodes[recipe.ShortCode] = true
	return nil
}

func (s *stubRepo) GetByID(_ context.Context, id, _ uuid.UUID) (*model.Recipe, error) {
	recipe, ok := s.recipes[id]
	if !ok {
		return nil, model.ErrRecipeNotFound
	}
	return recipe, nil
}

func (s *stubRepo) Update(_ context.Context, recipe *model.Recipe, lines []model.IngredientLine, _ []uuid.UUID) error {
	stored, ok := s.recipes[recipe.ID]
	if !ok {
		return model.ErrRecipeNotFound
	}
	stored.Name = recipe.Name
	stored.Text = recipe.Text
	stored.CookingTime = recipe.CookingTime
	stored.Image = recipe.Image
	stored.Ingredients = lines
	return nil
}

func (s *stubRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.recipes[id]; !ok {
		return model.ErrRecipeNotFound
	}
	delete(s.recipes, id)
	return nil
}

func (s *stubRepo) GetByShortCode(context.Context, string) (uuid.UUID, error) {
	return uuid.Nil, model.ErrRecipeNotFound
}
func (s *stubRepo) GetShortCode(context.Context, uuid.UUID) (string, error) { return "", nil }
func (s *stubRepo) GetSummary(context.Context, uuid.UUID) (*model.Summary, error) {
	return nil, model.ErrRecipeNotFound
}
func (s *stubRepo) List(context.Context, repository.Filter) ([]*model.Recipe, int, error) {
	return nil, 0, nil
}
func (s *stubRepo) CountByAuthor(context.Context, uuid.UUID) (int, error) { return 0, nil }
func (s *stubRepo) SummariesByAuthor(context.Context, uuid.UUID, int) ([]model.Summary, error) {
	return nil, nil
}

// stubCatalog satisfies both reference-data repositories; existence
// checks pass unless missing is set.
type stubCatalog struct {
	missing bool
}

func (s *stubCatalog) Create(context.Context, *tagmodel.Tag) error { return nil }
func (s *stubCatalog) GetByID(context.Context, uuid.UUID) (*tagmodel.Tag, error) {
	return nil, tagmodel.ErrTagNotFound
}
func (s *stubCatalog) List(context.Context) ([]tagmodel.Tag, error) { return nil, nil }
func (s *stubCatalog) ExistAll(context.Context, []uuid.UUID) (bool, error) {
	return !s.missing, nil
}

type stubIngredientCatalog struct {
	missing bool
}

func (s *stubIngredientCatalog) GetByID(context.Context, uuid.UUID) (*ingredientmodel.Ingredient, error) {
	return nil, ingredientmodel.ErrIngredientNotFound
}
func (s *stubIngredientCatalog) Search(context.Context, string) ([]ingredientmodel.Ingredient, error) {
	return nil, nil
}
func (s *stubIngredientCatalog) BulkCreate(context.Context, []ingredientmodel.Ingredient) (int, error) {
	return 0, nil
}
func (s *stubIngredientCatalog) ExistAll(context.Context, []uuid.UUID) (bool, error) {
	return !s.missing, nil
}

func newService(repo *stubRepo, minter *seqMinter, inv *recordingInvalidator) ServiceInterface {
	return NewRecipeService(repo, &stubCatalog{}, &stubIngredientCatalog{}, minter, inv)
}

// seqMinter hands out codes from a fixed sequence.
type seqMinter struct {
	codes []string
	next  int
}

func (m *seqMinter) Generate() (string, error) {
	code := m.codes[m.next]
	m.next++
	return code, nil
}

type recordingInvalidator struct {
	codes []string
}

func (r *recordingInvalidator) InvalidateCode(_ context.Context, code string) error {
	r.codes = append(r.codes, code)
	return nil
}

func validRequest() model.CreateRecipeRequest {
	return model.CreateRecipeRequest{
		Name:        "Pancakes",
		Text:        "Mix and fry.",
		CookingTime: 20,
		Tags:        []uuid.UUID{uuid.New()},
		Ingredients: []model.IngredientLineRequest{{ID: uuid.New(), Amount: 200}},
	}
}

func TestCreate(t *testing.T) {
	repo := newStubRepo()
	svc := newService(repo, &seqMinter{codes: []string{"AAAAAA"}}, &recordingInvalidator{})
	authorID := uuid.New()

	recipe, err := svc.Create(context.Background(), authorID, validRequest())

	require.NoError(t, err)
	assert.Equal(t, authorID, recipe.AuthorID)
	assert.Equal(t, "AAAAAA", recipe.ShortCode)
	assert.Len(t, recipe.Ingredients, 1)
}

func TestCreate_RetriesOnShortCodeCollision(t *testing.T) {
	repo := newStubRepo()
	repo.usedCodes["AAAAAA"] = true

	svc := newService(repo, &seqMinter{codes: []string{"AAAAAA", "BBBBBB"}}, &recordingInvalidator{})

	recipe, err := svc.Create(context.Background(), uuid.New(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, "BBBBBB", recipe.ShortCode)
}

func TestCreate_InvalidRequest(t *testing.T) {
	repo := newStubRepo()
	svc := newService(repo, &seqMinter{codes: []string{"AAAAAA"}}, &recordingInvalidator{})

	req := validRequest()
	req.CookingTime = 0

	_, err := svc.Create(context.Background(), uuid.New(), req)

	assert.Error(t, err)
	assert.Empty(t, repo.recipes)
}

func TestCreate_UnknownReferences(t *testing.T) {
	repo := newStubRepo()
	minter := &seqMinter{codes: []string{"AAAAAA", "BBBBBB"}}

	svc := NewRecipeService(repo, &stubCatalog{missing: true}, &stubIngredientCatalog{}, minter, &recordingInvalidator{})
	_, err := svc.Create(context.Background(), uuid.New(), validRequest())
	assert.ErrorIs(t, err, model.ErrUnknownTag)

	svc = NewRecipeService(repo, &stubCatalog{}, &stubIngredientCatalog{missing: true}, minter, &recordingInvalidator{})
	_, err = svc.Create(context.Background(), uuid.New(), validRequest())
	assert.ErrorIs(t, err, model.ErrUnknownIngredient)

	assert.Empty(t, repo.recipes)
}

func TestUpdate_OnlyAuthor(t *testing.T) {
	repo := newStubRepo()
	svc := newService(repo, &seqMinter{codes: []string{"AAAAAA"}}, &recordingInvalidator{})
	authorID := uuid.New()

	recipe, err := svc.Create(context.Background(), authorID, validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.Name = "Waffles"

	_, err = svc.Update(context.Background(), uuid.New(), recipe.ID, req)
	assert.ErrorIs(t, err, model.ErrNotRecipeAuthor)

	updated, err := svc.Update(context.Background(), authorID, recipe.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "Waffles", updated.Name)
	assert.Equal(t, "AAAAAA", updated.ShortCode)
}

func TestDelete_AuthorAndAdmin(t *testing.T) {
	repo := newStubRepo()
	invalidator := &recordingInvalidator{}
	svc := newService(repo, &seqMinter{codes: []string{"AAAAAA", "BBBBBB"}}, invalidator)
	authorID := uuid.New()

	recipe, err := svc.Create(context.Background(), authorID, validRequest())
	require.NoError(t, err)

	err = svc.Delete(context.Background(), uuid.New(), false, recipe.ID)
	assert.ErrorIs(t, err, model.ErrNotRecipeAuthor)

	require.NoError(t, svc.Delete(context.Background(), uuid.New(), true, recipe.ID))
	assert.Equal(t, []string{"AAAAAA"}, invalidator.codes)

	err = svc.Delete(context.Background(), authorID, false, recipe.ID)
	assert.ErrorIs(t, err, model.ErrRecipeNotFound)
}
