package service

import (
	"context"

	"github.com/google/uuid"

	"recipehub-backend/internal/domains/tag/model"
)

type ServiceInterface interface {
	Create(ctx context.Context, req model.CreateTagRequest) (*model.Tag, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Tag, error)
	List(ctx context.Context) ([]model.Tag, error)
}
