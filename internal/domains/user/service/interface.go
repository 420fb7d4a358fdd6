package service

import (
	"context"

	"github.com/google/uuid"

	"recipehub-backend/internal/domains/user/model"
)

type ServiceInterface interface {
	Register(ctx context.Context, req model.RegisterRequest) (*model.UserResponse, error)
	Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error)
	GetProfile(ctx context.Context, viewerID, userID uuid.UUID) (*model.UserResponse, error)
	List(ctx context.Context, viewerID uuid.UUID, page, limit int) ([]model.UserResponse, int, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, req model.ChangePasswordRequest) error
	SetAvatar(ctx context.Context, userID uuid.UUID, req model.SetAvatarRequest) (*model.UserResponse, error)
	DeleteAvatar(ctx context.Context, userID uuid.UUID) error
}

// SubscriptionChecker reports whether viewer follows target. Implemented by
// the relationship repository; declared here so the user domain does not
// import it.
type SubscriptionChecker interface {
	SubscriptionExists(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error)
}
