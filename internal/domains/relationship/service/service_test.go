package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	recipemodel "recipehub-backend/internal/domains/recipe/model"
	reciperepo "recipehub-backend/internal/domains/recipe/repository"
	"recipehub-backend/internal/domains/relationship/model"
	usermodel "recipehub-backend/internal/domains/user/model"
)

type pair struct {
	a uuid.UUID
	b uuid.UUID
}

// stubRelationRepo mirrors the storage semantics: first insert of a pair
// wins, removal of an absent pair reports not found.
type stubRelationRepo struct {
	relations map[model.Kind]map[pair]bool
	subs      map[pair]bool
}

func newStubRelationRepo() *stubRelationRepo {
	return &stubRelationRepo{
		relations: map[model.Kind]map[pair]bool{
			model.KindFavorite: {},
			model.KindCart:     {},
		},
		subs: map[pair]bool{},
	}
}

func (s *stubRelationRepo) AddRecipeRelation(_ context.Context, kind model.Kind, userID, recipeID uuid.UUID) error {
	key := pair{userID, recipeID}
	if s.relations[kind][key] {
		return model.ErrAlreadyExists
	}
	s.relations[kind][key] = true
	return nil
}

func (s *stubRelationRepo) RemoveRecipeRelation(_ context.Context, kind model.Kind, userID, recipeID uuid.UUID) error {
	key := pair{userID, recipeID}
	if !s.relations[kind][key] {
		return model.ErrRelationNotFound
	}
	delete(s.relations[kind], key)
	return nil
}

func (s *stubRelationRepo) RecipeRelationExists(_ context.Context, kind model.Kind, userID, recipeID uuid.UUID) (bool, error) {
	return s.relations[kind][pair{userID, recipeID}], nil
}

func (s *stubRelationRepo) ListRecipeIDs(_ context.Context, kind model.Kind, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for key := range s.relations[kind] {
		if key.a == userID {
			ids = append(ids, key.b)
		}
	}
	return ids, nil
}

func (s *stubRelationRepo) AddSubscription(_ context.Context, followerID, followeeID uuid.UUID) error {
	key := pair{followerID, followeeID}
	if s.subs[key] {
		return model.ErrAlreadyExists
	}
	s.subs[key] = true
	return nil
}

func (s *stubRelationRepo) RemoveSubscription(_ context.Context, followerID, followeeID uuid.UUID) error {
	key := pair{followerID, followeeID}
	if !s.subs[key] {
		return model.ErrRelationNotFound
	}
	delete(s.subs, key)
	return nil
}

func (s *stubRelationRepo) SubscriptionExists(_ context.Context, followerID, followeeID uuid.UUID) (bool, error) {
	return s.subs[pair{followerID, followeeID}], nil
}

func (s *stubRelationRepo) ListFollowees(_ context.Context, followerID uuid.UUID, _, _ int) ([]model.Followee, int, error) {
	var out []model.Followee
	for key := range s.subs {
		if key.a == followerID {
			out = append(out, model.Followee{ID: key.b, IsSubscribed: true})
		}
	}
	return out, len(out), nil
}

type stubRecipeRepo struct {
	summaries map[uuid.UUID]*recipemodel.Summary
	counts    map[uuid.UUID]int
	authored  map[uuid.UUID][]recipemodel.Summary
}

func newStubRecipeRepo() *stubRecipeRepo {
	return &stubRecipeRepo{
		summaries: map[uuid.UUID]*recipemodel.Summary{},
		counts:    map[uuid.UUID]int{},
		authored:  map[uuid.UUID][]recipemodel.Summary{},
	}
}

func (s *stubRecipeRepo) GetSummary(_ context.Context, id uuid.UUID) (*recipemodel.Summary, error) {
	summary, ok := s.summaries[id]
	if !ok {
		return nil, recipemodel.ErrRecipeNotFound
	}
	return summary, nil
}

func (s *stubRecipeRepo) CountByAuthor(_ context.Context, authorID uuid.UUID) (int, error) {
	return s.counts[authorID], nil
}

func (s *stubRecipeRepo) SummariesByAuthor(_ context.Context, authorID uuid.UUID, limit int) ([]recipemodel.Summary, error) {
	out := s.authored[authorID]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (s *stubRecipeRepo) Create(context.Context, *recipemodel.Recipe, []recipemodel.IngredientLine, []uuid.UUID) error {
	return nil
}
func (s *stubRecipeRepo) GetByID(context.Context, uuid.UUID, uuid.UUID) (*recipemodel.Recipe, error) {
	return nil, recipemodel.ErrRecipeNotFound
}
func (s *stubRecipeRepo) GetByShortCode(context.Context, string) (uuid.UUID, error) {
	return uuid.Nil, recipemodel.ErrRecipeNotFound
}
func (s *stubRecipeRepo) GetShortCode(context.Context, uuid.UUID) (string, error) {
	return "", recipemodel.ErrRecipeNotFound
}
func (s *stubRecipeRepo) List(context.Context, reciperepo.Filter) ([]*recipemodel.Recipe, int, error) {
	return nil, 0, nil
}
func (s *stubRecipeRepo) Update(context.Context, *recipemodel.Recipe, []recipemodel.IngredientLine, []uuid.UUID) error {
	return nil
}
func (s *stubRecipeRepo) Delete(context.Context, uuid.UUID) error { return nil }

type stubUserRepo struct {
	users map[uuid.UUID]*usermodel.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: map[uuid.UUID]*usermodel.User{}}
}

func (s *stubUserRepo) GetByID(_ context.Context, id uuid.UUID) (*usermodel.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, usermodel.ErrUserNotFound
	}
	return user, nil
}

func (s *stubUserRepo) Create(context.Context, *usermodel.User) error { return nil }
func (s *stubUserRepo) GetByEmail(context.Context, string) (*usermodel.User, error) {
	return nil, usermodel.ErrUserNotFound
}
func (s *stubUserRepo) List(context.Context, int, int) ([]*usermodel.User, int, error) {
	return nil, 0, nil
}
func (s *stubUserRepo) UpdatePassword(context.Context, uuid.UUID, string) error { return nil }
func (s *stubUserRepo) UpdateAvatar(context.Context, uuid.UUID, string) error   { return nil }

type fixture struct {
	svc       ServiceInterface
	relations *stubRelationRepo
	recipes   *stubRecipeRepo
	users     *stubUserRepo
	userID    uuid.UUID
	recipeID  uuid.UUID
	authorID  uuid.UUID
}

func newFixture() *fixture {
	relations := newStubRelationRepo()
	recipes := newStubRecipeRepo()
	users := newStubUserRepo()

	f := &fixture{
		svc:       NewRelationshipService(relations, recipes, users),
		relations: relations,
		recipes:   recipes,
		users:     users,
		userID:    uuid.New(),
		recipeID:  uuid.New(),
		authorID:  uuid.New(),
	}

	recipes.summaries[f.recipeID] = &recipemodel.Summary{ID: f.recipeID, Name: "Pancakes", CookingTime: 20}
	recipes.counts[f.authorID] = 3
	recipes.authored[f.authorID] = []recipemodel.Summary{
		{ID: uuid.New(), Name: "Borscht", CookingTime: 90},
		{ID: uuid.New(), Name: "Syrniki", CookingTime: 25},
		{ID: uuid.New(), Name: "Okroshka", CookingTime: 15},
	}
	users.users[f.authorID] = &usermodel.User{ID: f.authorID, Email: "author@example.com", Username: "author"}
	return f
}

func TestAddFavorite(t *testing.T) {
	f := newFixture()

	summary, err := f.svc.AddFavorite(context.Background(), f.userID, f.recipeID)

	require.NoError(t, err)
	assert.Equal(t, f.recipeID, summary.ID)
	assert.Equal(t, "Pancakes", summary.Name)
}

func TestAddFavorite_Duplicate(t *testing.T) {
	f := newFixture()

	_, err := f.svc.AddFavorite(context.Background(), f.userID, f.recipeID)
	require.NoError(t, err)

	_, err = f.svc.AddFavorite(context.Background(), f.userID, f.recipeID)
	assert.ErrorIs(t, err, model.ErrAlreadyExists)
}

func TestAddFavorite_UnknownRecipe(t *testing.T) {
	f := newFixture()

	_, err := f.svc.AddFavorite(context.Background(), f.userID, uuid.New())

	assert.ErrorIs(t, err, recipemodel.ErrRecipeNotFound)
	assert.Empty(t, f.relations.relations[model.KindFavorite])
}

func TestRemoveFavorite_Absent(t *testing.T) {
	f := newFixture()

	err := f.svc.RemoveFavorite(context.Background(), f.userID, f.recipeID)

	assert.ErrorIs(t, err, model.ErrRelationNotFound)
}

func TestCartAndFavoriteAreIndependent(t *testing.T) {
	f := newFixture()

	_, err := f.svc.AddFavorite(context.Background(), f.userID, f.recipeID)
	require.NoError(t, err)

	// Same pair in the other ledger is not a duplicate.
	_, err = f.svc.AddToCart(context.Background(), f.userID, f.recipeID)
	require.NoError(t, err)

	require.NoError(t, f.svc.RemoveFromCart(context.Background(), f.userID, f.recipeID))
	assert.True(t, f.relations.relations[model.KindFavorite][pair{f.userID, f.recipeID}])
}

func TestSubscribe(t *testing.T) {
	f := newFixture()

	followee, err := f.svc.Subscribe(context.Background(), f.userID, f.authorID, 0)

	require.NoError(t, err)
	assert.Equal(t, f.authorID, followee.ID)
	assert.Equal(t, "author", followee.Username)
	assert.Equal(t, 3, followee.RecipesCount)
	assert.True(t, followee.IsSubscribed)
}

func TestSubscribe_EmbedsRecipePreviews(t *testing.T) {
	f := newFixture()

	followee, err := f.svc.Subscribe(context.Background(), f.userID, f.authorID, 2)

	require.NoError(t, err)
	require.Len(t, followee.Recipes, 2)
	assert.Equal(t, "Borscht", followee.Recipes[0].Name)
	assert.Equal(t, "Syrniki", followee.Recipes[1].Name)
}

func TestListSubscriptions_RecipePreviews(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Subscribe(context.Background(), f.userID, f.authorID, 0)
	require.NoError(t, err)

	followees, total, err := f.svc.ListSubscriptions(context.Background(), f.userID, 1, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, followees, 1)
	assert.Len(t, followees[0].Recipes, 3)

	// recipes_limit caps the embedded previews, newest first.
	followees, _, err = f.svc.ListSubscriptions(context.Background(), f.userID, 1, 10, 1)
	require.NoError(t, err)
	require.Len(t, followees[0].Recipes, 1)
	assert.Equal(t, "Borscht", followees[0].Recipes[0].Name)
}

func TestSubscribe_Self(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Subscribe(context.Background(), f.userID, f.userID, 0)

	assert.ErrorIs(t, err, model.ErrSelfSubscription)
}

func TestSubscribe_UnknownUser(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Subscribe(context.Background(), f.userID, uuid.New(), 0)

	assert.ErrorIs(t, err, usermodel.ErrUserNotFound)
}

func TestSubscribe_Duplicate(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Subscribe(context.Background(), f.userID, f.authorID, 0)
	require.NoError(t, err)

	_, err = f.svc.Subscribe(context.Background(), f.userID, f.authorID, 0)
	assert.ErrorIs(t, err, model.ErrAlreadyExists)
}

func TestUnsubscribe_Absent(t *testing.T) {
	f := newFixture()

	err := f.svc.Unsubscribe(context.Background(), f.userID, f.authorID)

	assert.ErrorIs(t, err, model.ErrRelationNotFound)
}
