package service

import (
	"context"

	"github.com/google/uuid"

	recipemodel "recipehub-backend/internal/domains/recipe/model"
	reciperepo "recipehub-backend/internal/domains/recipe/repository"
	"recipehub-backend/internal/domains/relationship/model"
	"recipehub-backend/internal/domains/relationship/repository"
	userrepo "recipehub-backend/internal/domains/user/repository"
)

type relationshipService struct {
	relationRepo repository.RelationshipRepository
	recipeRepo   reciperepo.RecipeRepository
	userRepo     userrepo.UserRepository
}

func NewRelationshipService(
	relationRepo repository.RelationshipRepository,
	recipeRepo reciperepo.RecipeRepository,
	userRepo userrepo.UserRepository,
) ServiceInterface {
	return &relationshipService{
		relationRepo: relationRepo,
		recipeRepo:   recipeRepo,
		userRepo:     userRepo,
	}
}

func (s *relationshipService) AddFavorite(ctx context.Context, userID, recipeID uuid.UUID) (*recipemodel.Summary, error) {
	return s.addRecipeRelation(ctx, model.KindFavorite, userID, recipeID)
}

func (s *relationshipService) RemoveFavorite(ctx context.Context, userID, recipeID uuid.UUID) error {
	return s.relationRepo.RemoveRecipeRelation(ctx, model.KindFavorite, userID, recipeID)
}

func (s *relationshipService) AddToCart(ctx context.Context, userID, recipeID uuid.UUID) (*recipemodel.Summary, error) {
	return s.addRecipeRelation(ctx, model.KindCart, userID, recipeID)
}

func (s *relationshipService) RemoveFromCart(ctx context.Context, userID, recipeID uuid.UUID) error {
	return s.relationRepo.RemoveRecipeRelation(ctx, model.KindCart, userID, recipeID)
}

// addRecipeRelation checks the recipe first so a missing recipe reads as
// NotFound rather than a foreign key failure, then inserts the pair
// atomically.
func (s *relationshipService) addRecipeRelation(ctx context.Context, kind model.Kind, userID, recipeID uuid.UUID) (*recipemodel.Summary, error) {
	summary, err := s.recipeRepo.GetSummary(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	if err := s.relationRepo.AddRecipeRelation(ctx, kind, userID, recipeID); err != nil {
		return nil, err
	}
	return summary, nil
}

func (s *relationshipService) Subscribe(ctx context.Context, followerID, followeeID uuid.UUID, recipesLimit int) (*model.Followee, error) {
	if followerID == followeeID {
		return nil, model.ErrSelfSubscription
	}

	followee, err := s.userRepo.GetByID(ctx, followeeID)
	if err != nil {
		return nil, err
	}

	if err := s.relationRepo.AddSubscription(ctx, followerID, followeeID); err != nil {
		return nil, err
	}

	count, err := s.recipeRepo.CountByAuthor(ctx, followeeID)
	if err != nil {
		return nil, err
	}
	previews, err := s.recipeRepo.SummariesByAuthor(ctx, followeeID, recipesLimit)
	if err != nil {
		return nil, err
	}

	return &model.Followee{
		ID:           followee.ID,
		Email:        followee.Email,
		Username:     followee.Username,
		FirstName:    followee.FirstName,
		LastName:     followee.LastName,
		Avatar:       followee.Avatar,
		IsSubscribed: true,
		RecipesCount: count,
		Recipes:      previews,
	}, nil
}

func (s *relationshipService) Unsubscribe(ctx context.Context, followerID, followeeID uuid.UUID) error {
	return s.relationRepo.RemoveSubscription(ctx, followerID, followeeID)
}

func (s *relationshipService) ListSubscriptions(ctx context.Context, userID uuid.UUID, page, limit, recipesLimit int) ([]model.Followee, int, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	followees, total, err := s.relationRepo.ListFollowees(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	for i := range followees {
		previews, err := s.recipeRepo.SummariesByAuthor(ctx, followees[i].ID, recipesLimit)
		if err != nil {
			return nil, 0, err
		}
		followees[i].Recipes = previews
	}
	return followees, total, nil
}
