package service

import (
	"context"

	"github.com/google/uuid"

	"recipehub-backend/internal/domains/shoppinglist/model"
)

type ServiceInterface interface {
	// BuildList aggregates the user's cart into shopping list items,
	// sorted by ingredient name. An empty cart yields an empty list.
	BuildList(ctx context.Context, userID uuid.UUID) ([]model.Item, error)
	// RenderText formats items as the downloadable plain-text report.
	RenderText(items []model.Item) string
}
