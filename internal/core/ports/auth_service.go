package ports

import (
	"context"

	"github.com/technotes/notes-api/internal/core/domain"
)

// LoginInput carries user credentials.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TokenPair is issued on a successful login.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	User         *domain.User
}

type AuthService interface {
	Login(ctx context.Context, input LoginInput) (*TokenPair, error)
	// Refresh exchanges a refresh token for a new access token.
	Refresh(ctx context.Context, refreshToken string) (string, error)
}
