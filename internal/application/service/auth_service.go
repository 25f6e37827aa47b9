package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/okushnir/checkline-api/internal/domain/entity"
	"github.com/okushnir/checkline-api/internal/domain/repository"
	"github.com/okushnir/checkline-api/pkg/apperror"
	"github.com/okushnir/checkline-api/pkg/utils"
)

// AuthService handles authentication-related operations
type AuthService struct {
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	jwtManager       *utils.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo repository.UserRepository,
	refreshTokenRepo repository.RefreshTokenRepository,
	jwtManager *utils.JWTManager,
) *AuthService {
	return &AuthService{
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		jwtManager:       jwtManager,
	}
}

// TokenPair represents an issued access/refresh token pair
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// RegisterInput represents the registration input
type RegisterInput struct {
	FullName string
	Username string
	Password string
}

// Register creates a new user account and logs it in
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*TokenPair, error) {
	existing, err := s.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Username already registered")
	}

	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		FullName: input.FullName,
		Username: input.Username,
		Password: hashedPassword,
		Active:   true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, user)
}

// LoginInput represents the login input
type LoginInput struct {
	Username string
	Password string
}

// Login authenticates a user and returns a token pair
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*TokenPair, error) {
	user, err := s.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(input.Password, user.Password) {
		return nil, apperror.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, user)
}

// Refresh exchanges a stored refresh token for a new token pair. The used
// token is deleted, so a refresh token works exactly once.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	record, err := s.refreshTokenRepo.GetByToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, apperror.ErrInvalidToken
	}

	if err := s.refreshTokenRepo.Delete(ctx, record.ID); err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, &record.User)
}

// GetCurrentUser returns the current user by ID
func (s *AuthService) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrNotFound
	}
	if !user.Active {
		return nil, apperror.ErrUnauthorized
	}
	return user, nil
}

func (s *AuthService) issueTokens(ctx context.Context, user *entity.User) (*TokenPair, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Username)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	record := &entity.RefreshToken{
		UserID: user.ID,
		Token:  refreshToken,
	}
	if err := s.refreshTokenRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
