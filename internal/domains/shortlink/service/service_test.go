package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	recipemodel "recipehub-backend/internal/domains/recipe/model"
	reciperepo "recipehub-backend/internal/domains/recipe/repository"
	"recipehub-backend/internal/domains/shortlink/model"
)

// stubRecipeRepo backs the resolver with an in-memory code table.
type stubRecipeRepo struct {
	codes map[string]uuid.UUID
	byID  map[uuid.UUID]string
}

func newStubRecipeRepo() *stubRecipeRepo {
	return &stubRecipeRepo{
		codes: make(map[string]uuid.UUID),
		byID:  make(map[uuid.UUID]string),
	}
}

func (s *stubRecipeRepo) put(code string, id uuid.UUID) {
	s.codes[code] = id
	s.byID[id] = code
}

func (s *stubRecipeRepo) GetByShortCode(_ context.Context, code string) (uuid.UUID, error) {
	id, ok := s.codes[code]
	if !ok {
		return uuid.Nil, recipemodel.ErrRecipeNotFound
	}
	return id, nil
}

func (s *stubRecipeRepo) GetShortCode(_ context.Context, id uuid.UUID) (string, error) {
	code, ok := s.byID[id]
	if !ok {
		return "", recipemodel.ErrRecipeNotFound
	}
	return code, nil
}

func (s *stubRecipeRepo) Create(context.Context, *recipemodel.Recipe, []recipemodel.IngredientLine, []uuid.UUID) error {
	return nil
}
func (s *stubRecipeRepo) GetByID(context.Context, uuid.UUID, uuid.UUID) (*recipemodel.Recipe, error) {
	return nil, recipemodel.ErrRecipeNotFound
}
func (s *stubRecipeRepo) GetSummary(context.Context, uuid.UUID) (*recipemodel.Summary, error) {
	return nil, recipemodel.ErrRecipeNotFound
}
func (s *stubRecipeRepo) List(context.Context, reciperepo.Filter) ([]*recipemodel.Recipe, int, error) {
	return nil, 0, nil
}
func (s *stubRecipeRepo) Update(context.Context, *recipemodel.Recipe, []recipemodel.IngredientLine, []uuid.UUID) error {
	return nil
}
func (s *stubRecipeRepo) Delete(context.Context, uuid.UUID) error { return nil }
func (s *stubRecipeRepo) CountByAuthor(context.Context, uuid.UUID) (int, error) {
	return 0, nil
}
func (s *stubRecipeRepo) SummariesByAuthor(context.Context, uuid.UUID, int) ([]recipemodel.Summary, error) {
	return nil, nil
}

// memCache is a map-backed cache.Cache for tests.
type memCache struct {
	m map[string]string
}

func newMemCache() *memCache { return &memCache{m: make(map[string]string)} }

func (c *memCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	v, ok := c.m[key]
	if !ok {
		return false, nil
	}
	if p, ok := dest.(*string); ok {
		*p = v
	}
	return true, nil
}

func (c *memCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	c.m[key] = fmt.Sprint(value)
	return nil
}

func (c *memCache) Delete(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(c.m, key)
	}
	return nil
}

func (c *memCache) Ping(context.Context) error { return nil }

func newTestService(repo *stubRecipeRepo) ServiceInterface {
	return NewShortlinkService(repo, newMemCache(), "https://recipehub.example.com")
}

func TestGenerate_ProducesValidCodes(t *testing.T) {
	svc := newTestService(newStubRecipeRepo())

	for i := 0; i < 100; i++ {
		code, err := svc.Generate()
		require.NoError(t, err)
		assert.Len(t, code, model.CodeLength)
		for _, r := range code {
			assert.True(t, strings.ContainsRune(model.CodeAlphabet, r), "unexpected rune %q", r)
		}
	}
}

func TestResolve_Roundtrip(t *testing.T) {
	repo := newStubRecipeRepo()
	svc := newTestService(repo)

	code, err := svc.Generate()
	require.NoError(t, err)
	recipeID := uuid.New()
	repo.put(code, recipeID)

	got, err := svc.Resolve(context.Background(), code)
	require.NoError(t, err)
	assert.Equal(t, recipeID, got)
}

func TestResolve_InvalidCodes(t *testing.T) {
	svc := newTestService(newStubRecipeRepo())

	for _, code := range []string{"", "abc", "abcdefg", "abc-ef", "абвгде"} {
		_, err := svc.Resolve(context.Background(), code)
		assert.ErrorIs(t, err, model.ErrInvalidCode, "code %q", code)
	}
}

func TestResolve_UnknownCode(t *testing.T) {
	svc := newTestService(newStubRecipeRepo())

	_, err := svc.Resolve(context.Background(), "Ab3xYz")
	assert.ErrorIs(t, err, recipemodel.ErrRecipeNotFound)
}

func TestResolve_UsesCache(t *testing.T) {
	repo := newStubRecipeRepo()
	svc := newTestService(repo)

	recipeID := uuid.New()
	repo.put("Ab3xYz", recipeID)

	_, err := svc.Resolve(context.Background(), "Ab3xYz")
	require.NoError(t, err)

	// Drop the backing row; the cached mapping must still answer.
	delete(repo.codes, "Ab3xYz")

	got, err := svc.Resolve(context.Background(), "Ab3xYz")
	require.NoError(t, err)
	assert.Equal(t, recipeID, got)
}

func TestInvalidateCode(t *testing.T) {
	repo := newStubRecipeRepo()
	svc := newTestService(repo)

	recipeID := uuid.New()
	repo.put("Ab3xYz", recipeID)

	_, err := svc.Resolve(context.Background(), "Ab3xYz")
	require.NoError(t, err)

	delete(repo.codes, "Ab3xYz")
	require.NoError(t, svc.InvalidateCode(context.Background(), "Ab3xYz"))

	_, err = svc.Resolve(context.Background(), "Ab3xYz")
	assert.ErrorIs(t, err, recipemodel.ErrRecipeNotFound)
}

func TestGetLink(t *testing.T) {
	repo := newStubRecipeRepo()
	svc := newTestService(repo)

	recipeID := uuid.New()
	repo.put("Ab3xYz", recipeID)

	link, err := svc.GetLink(context.Background(), recipeID)
	require.NoError(t, err)
	assert.Equal(t, "https://recipehub.example.com/s/Ab3xYz", link)
}

func TestGetLink_UnknownRecipe(t *testing.T) {
	svc := newTestService(newStubRecipeRepo())

	_, err := svc.GetLink(context.Background(), uuid.New())
	assert.ErrorIs(t, err, recipemodel.ErrRecipeNotFound)
}
