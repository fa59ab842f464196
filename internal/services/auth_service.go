package services

import (
	"context"
	"errors"

	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/auth"
	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/dto"
	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/models"
	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/otp"
	"github.com/ahmetcoskunkizilkaya/pixisphere/internal/repository"
	"github.com/google/uuid"
)

type AuthService struct {
	users  UserRepository
	tokens *auth.TokenIssuer
}

func NewAuthService(users UserRepository, tokens *auth.TokenIssuer) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Login answers unknown email and wrong password identically.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	addr := otp.NormalizeEmail(req.Email)
	if addr == "" || req.Password == "" {
		return nil, validationErr("email and password are required")
	}

	user, err := s.users.FindByEmail(ctx, addr)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, internalErr("load user", err)
	}
	if !auth.CheckPassword(req.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrAccountInactive
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, internalErr("issue token", err)
	}
	return &dto.AuthResponse{Token: token, User: dto.NewUserResponse(user)}, nil
}

func (s *AuthService) Profile(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

// ActiveUser returns the user behind a token, rejecting deactivated
// accounts. Role middleware calls it on every protected request.
func (s *AuthService) ActiveUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.loadUser(ctx, userID)
	if errors.Is(err, ErrUserNotFound) {
		return nil, kindError(ErrAuth, "user no longer exists")
	}
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrAccountInactive
	}
	return user, nil
}

func (s *AuthService) loadUser(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, internalErr("load user", err)
	}
	return user, nil
}
