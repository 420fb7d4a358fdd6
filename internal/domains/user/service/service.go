package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"recipehub-backend/internal/domains/user/model"
	"recipehub-backend/internal/domains/user/repository"
	"recipehub-backend/pkg/jwt"
)

type userService struct {
	userRepo      repository.UserRepository
	subscriptions SubscriptionChecker
	jwtManager    *jwt.Manager
}

func NewUserService(
	userRepo repository.UserRepository,
	subscriptions SubscriptionChecker,
	jwtManager *jwt.Manager,
) ServiceInterface {
	return &userService{
		userRepo:      userRepo,
		subscriptions: subscriptions,
		jwtManager:    jwtManager,
	}
}

func (s *userService) Register(ctx context.Context, req model.RegisterRequest) (*model.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:           uuid.New(),
		Email:        req.Email,
		Username:     req.Username,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	resp := user.ToResponse(false)
	return &resp, nil
}

func (s *userService) Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == model.ErrUserNotFound {
			return nil, model.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, model.ErrInvalidCredentials
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID.String(), user.Email, user.Role())
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &model.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user.ToResponse(false),
	}, nil
}

func (s *userService) GetProfile(ctx context.Context, viewerID, userID uuid.UUID) (*model.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	isSubscribed, err := s.isSubscribed(ctx, viewerID, userID)
	if err != nil {
		return nil, err
	}

	resp := user.ToResponse(isSubscribed)
	return &resp, nil
}

func (s *userService) List(ctx context.Context, viewerID uuid.UUID, page, limit int) ([]model.UserResponse, int, error) {
	users, total, err := s.userRepo.List(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]model.UserResponse, 0, len(users))
	for _, u := range users {
		isSubscribed, err := s.isSubscribed(ctx, viewerID, u.ID)
		if err != nil {
			return nil, 0, err
		}
		responses = append(responses, u.ToResponse(isSubscribed))
	}

	return responses, total, nil
}

func (s *userService) ChangePassword(ctx context.Context, userID uuid.UUID, req model.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)) != nil {
		return model.ErrPasswordMismatch
	}
	if req.CurrentPassword == req.NewPassword {
		return model.ErrSamePassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.userRepo.UpdatePassword(ctx, userID, string(hash))
}

func (s *userService) SetAvatar(ctx context.Context, userID uuid.UUID, req model.SetAvatarRequest) (*model.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateAvatar(ctx, userID, req.Avatar); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := user.ToResponse(false)
	return &resp, nil
}

func (s *userService) DeleteAvatar(ctx context.Context, userID uuid.UUID) error {
	return s.userRepo.UpdateAvatar(ctx, userID, "")
}

func (s *userService) isSubscribed(ctx context.Context, viewerID, userID uuid.UUID) (bool, error) {
	if viewerID == uuid.Nil || viewerID == userID {
		return false, nil
	}
	exists, err := s.subscriptions.SubscriptionExists(ctx, viewerID, userID)
	if err != nil {
		return false, fmt.Errorf("failed to check subscription: %w", err)
	}
	return exists, nil
}
