package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sweetline/mithas-api/internal/domain/entity"
	"github.com/sweetline/mithas-api/internal/domain/repository"
	"github.com/sweetline/mithas-api/pkg/apperror"
	"github.com/sweetline/mithas-api/pkg/utils"
)

// AuthService handles admin authentication
type AuthService struct {
	userRepo   repository.UserRepository
	jwtManager *utils.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, jwtManager *utils.JWTManager) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
	}
}

// LoginInput represents the login input
type LoginInput struct {
	Email    string
	Password string
}

// LoginResult carries the authenticated user and their session token
type LoginResult struct {
	User  *entity.User
	Token string
}

// Login verifies credentials and issues a session token.
// A wrong email and a wrong password produce the same error.
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(input.Password, user.Password) {
		return nil, apperror.ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateSessionToken(user.ID, user.Name, user.Email, user.Role)
	if err != nil {
		return nil, apperror.ErrInternalServer
	}

	return &LoginResult{User: user, Token: token}, nil
}

// GetProfile retrieves the authenticated user's profile
func (s *AuthService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}
	return user, nil
}
