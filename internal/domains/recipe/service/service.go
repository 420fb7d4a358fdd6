package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	ingredientrepo "recipehub-backend/internal/domains/ingredient/repository"
	"recipehub-backend/internal/domains/recipe/model"
	"recipehub-backend/internal/domains/recipe/repository"
	tagrepo "recipehub-backend/internal/domains/tag/repository"
	"recipehub-backend/pkg/logger"
)

// maxMintAttempts bounds the short-code retry loop. With a 62^6 code space
// a second collision in a row is already vanishingly rare.
const maxMintAttempts = 10

type recipeService struct {
	recipeRepo     repository.RecipeRepository
	tagRepo        tagrepo.TagRepository
	ingredientRepo ingredientrepo.IngredientRepository
	codeMinter     CodeMinter
	invalidator    LinkInvalidator
}

func NewRecipeService(
	recipeRepo repository.RecipeRepository,
	tagRepo tagrepo.TagRepository,
	ingredientRepo ingredientrepo.IngredientRepository,
	codeMinter CodeMinter,
	invalidator LinkInvalidator,
) ServiceInterface {
	return &recipeService{
		recipeRepo:     recipeRepo,
		tagRepo:        tagRepo,
		ingredientRepo: ingredientRepo,
		codeMinter:     codeMinter,
		invalidator:    invalidator,
	}
}

// checkReferences verifies every referenced tag and ingredient exists so
// the caller gets a clear error instead of a foreign key failure. The FK
// constraints still back this up against concurrent deletes.
func (s *recipeService) checkReferences(ctx context.Context, req model.CreateRecipeRequest) error {
	ok, err := s.tagRepo.ExistAll(ctx, req.Tags)
	if err != nil {
		return fmt.Errorf("failed to check tags: %w", err)
	}
	if !ok {
		return model.ErrUnknownTag
	}

	ids := make([]uuid.UUID, 0, len(req.Ingredients))
	for _, line := range req.Ingredients {
		ids = append(ids, line.ID)
	}
	ok, err = s.ingredientRepo.ExistAll(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to check ingredients: %w", err)
	}
	if !ok {
		return model.ErrUnknownIngredient
	}
	return nil
}

func (s *recipeService) Create(ctx context.Context, authorID uuid.UUID, req model.CreateRecipeRequest) (*model.Recipe, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, req); err != nil {
		return nil, err
	}

	now := time.Now()
	recipe := &model.Recipe{
		ID:          uuid.New(),
		AuthorID:    authorID,
		Name:        req.Name,
		Text:        req.Text,
		CookingTime: req.CookingTime,
		Image:       req.Image,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	lines := toLines(req.Ingredients)

	// The short code is unique-indexed, so a concurrent mint of the same
	// code fails exactly one of the inserts. Retry with a fresh code.
	for attempt := 0; attempt < maxMintAttempts; attempt++ {
		code, err := s.codeMinter.Generate()
		if err != nil {
			return nil, fmt.Errorf("failed to generate short code: %w", err)
		}
		recipe.ShortCode = code

		err = s.recipeRepo.Create(ctx, recipe, lines, req.Tags)
		if errors.Is(err, model.ErrShortCodeCollision) {
			logger.Debug().Str("code", code).Msg("short code collision, retrying")
			continue
		}
		if err != nil {
			return nil, err
		}
		return s.recipeRepo.GetByID(ctx, recipe.ID, authorID)
	}

	return nil, fmt.Errorf("failed to allocate a short code after %d attempts", maxMintAttempts)
}

func (s *recipeService) GetByID(ctx context.Context, viewerID, id uuid.UUID) (*model.Recipe, error) {
	return s.recipeRepo.GetByID(ctx, id, viewerID)
}

func (s *recipeService) List(ctx context.Context, viewerID uuid.UUID, criteria model.ListCriteria) ([]*model.Recipe, int, error) {
	if criteria.Page < 1 {
		criteria.Page = 1
	}
	if criteria.Limit < 1 {
		criteria.Limit = 10
	}
	if criteria.Limit > 100 {
		criteria.Limit = 100
	}

	return s.recipeRepo.List(ctx, repository.Filter{
		TagSlugs:    criteria.TagSlugs,
		AuthorID:    criteria.AuthorID,
		FavoritedBy: criteria.FavoritedBy,
		InCartOf:    criteria.InCartOf,
		ViewerID:    viewerID,
		Page:        criteria.Page,
		Limit:       criteria.Limit,
	})
}

func (s *recipeService) Update(ctx context.Context, actorID, id uuid.UUID, req model.CreateRecipeRequest) (*model.Recipe, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, req); err != nil {
		return nil, err
	}

	existing, err := s.recipeRepo.GetByID(ctx, id, actorID)
	if err != nil {
		return nil, err
	}
	if existing.AuthorID != actorID {
		return nil, model.ErrNotRecipeAuthor
	}

	// The short code never changes: published links outlive edits.
	existing.Name = req.Name
	existing.Text = req.Text
	existing.CookingTime = req.CookingTime
	existing.Image = req.Image
	existing.UpdatedAt = time.Now()

	if err := s.recipeRepo.Update(ctx, existing, toLines(req.Ingredients), req.Tags); err != nil {
		return nil, err
	}
	return s.recipeRepo.GetByID(ctx, id, actorID)
}

func (s *recipeService) Delete(ctx context.Context, actorID uuid.UUID, isAdmin bool, id uuid.UUID) error {
	existing, err := s.recipeRepo.GetByID(ctx, id, actorID)
	if err != nil {
		return err
	}
	if existing.AuthorID != actorID && !isAdmin {
		return model.ErrNotRecipeAuthor
	}

	if err := s.recipeRepo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.invalidator.InvalidateCode(ctx, existing.ShortCode); err != nil {
		logger.Error().Err(err).Str("code", existing.ShortCode).Msg("failed to invalidate short link cache")
	}
	return nil
}

func toLines(reqs []model.IngredientLineRequest) []model.IngredientLine {
	lines := make([]model.IngredientLine, 0, len(reqs))
	for _, r := range reqs {
		lines = append(lines, model.IngredientLine{
			IngredientID: r.ID,
			Amount:       r.Amount,
		})
	}
	return lines
}
