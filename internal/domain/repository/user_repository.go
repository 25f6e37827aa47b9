package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/okushnir/checkline-api/internal/domain/entity"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
}

// RefreshTokenRepository defines the interface for stored refresh tokens
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *entity.RefreshToken) error
	GetByToken(ctx context.Context, token string) (*entity.RefreshToken, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
