package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"

	reciperepo "recipehub-backend/internal/domains/recipe/repository"
	"recipehub-backend/internal/domains/shortlink/model"
	"recipehub-backend/pkg/cache"
	"recipehub-backend/pkg/logger"
)

const (
	cacheKeyPrefix = "shortlink:"
	cacheTTL       = 24 * time.Hour
)

type shortlinkService struct {
	recipeRepo reciperepo.RecipeRepository
	cache      cache.Cache
	baseURL    string
}

func NewShortlinkService(recipeRepo reciperepo.RecipeRepository, c cache.Cache, baseURL string) ServiceInterface {
	return &shortlinkService{
		recipeRepo: recipeRepo,
		cache:      c,
		baseURL:    baseURL,
	}
}

func (s *shortlinkService) Generate() (string, error) {
	return gonanoid.Generate(model.CodeAlphabet, model.CodeLength)
}

func (s *shortlinkService) Resolve(ctx context.Context, code string) (uuid.UUID, error) {
	if !validCode(code) {
		return uuid.Nil, model.ErrInvalidCode
	}

	key := cacheKeyPrefix + code
	var cached string
	if found, err := s.cache.Get(ctx, key, &cached); err == nil && found {
		if id, err := uuid.Parse(cached); err == nil {
			return id, nil
		}
	}

	id, err := s.recipeRepo.GetByShortCode(ctx, code)
	if err != nil {
		return uuid.Nil, err
	}

	if err := s.cache.Set(ctx, key, id.String(), cacheTTL); err != nil {
		logger.Error().Err(err).Str("code", code).Msg("failed to cache short link")
	}
	return id, nil
}

func (s *shortlinkService) GetLink(ctx context.Context, recipeID uuid.UUID) (string, error) {
	code, err := s.recipeRepo.GetShortCode(ctx, recipeID)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/s/%s", s.baseURL, code), nil
}

func (s *shortlinkService) InvalidateCode(ctx context.Context, code string) error {
	return s.cache.Delete(ctx, cacheKeyPrefix+code)
}

// validCode rejects malformed codes before touching storage.
func validCode(code string) bool {
	if len(code) != model.CodeLength {
		return false
	}
	for _, r := range code {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}
