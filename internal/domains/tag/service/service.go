package service

import (
	"context"

	"github.com/google/uuid"

	"recipehub-backend/internal/domains/tag/model"
	"recipehub-backend/internal/domains/tag/repository"
	"recipehub-backend/internal/shared/utils"
)

type tagService struct {
	tagRepo repository.TagRepository
}

func NewTagService(tagRepo repository.TagRepository) ServiceInterface {
	return &tagService{tagRepo: tagRepo}
}

func (s *tagService) Create(ctx context.Context, req model.CreateTagRequest) (*model.Tag, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.GenerateSlug(req.Name)
	}
	color := req.Color
	if color == "" {
		color = "#49B64E"
	}

	tag := &model.Tag{
		ID:    uuid.New(),
		Name:  req.Name,
		Slug:  slug,
		Color: color,
	}

	if err := s.tagRepo.Create(ctx, tag); err != nil {
		return nil, err
	}

	return tag, nil
}

func (s *tagService) GetByID(ctx context.Context, id uuid.UUID) (*model.Tag, error) {
	return s.tagRepo.GetByID(ctx, id)
}

func (s *tagService) List(ctx context.Context) ([]model.Tag, error) {
	return s.tagRepo.List(ctx)
}
