package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/technotes/notes-api/internal/core/domain"
	"github.com/technotes/notes-api/internal/core/ports"
	"github.com/technotes/notes-api/internal/pkg/validate"
)

// TokenConfig holds the signing secrets and lifetimes of issued JWTs.
type TokenConfig struct {
	AccessSecret  string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

// AuthService implements login and access-token refresh.
type AuthService struct {
	users     ports.UserRepository
	hasher    ports.PasswordHasher
	tokens    TokenConfig
	validator *validate.Validator
	log       zerolog.Logger
}

func NewAuthService(users ports.UserRepository, hasher ports.PasswordHasher, tokens TokenConfig, log zerolog.Logger) *AuthService {
	if tokens.AccessTTL <= 0 {
		tokens.AccessTTL = 15 * time.Minute
	}
	if tokens.RefreshTTL <= 0 {
		tokens.RefreshTTL = 7 * 24 * time.Hour
	}
	return &AuthService{
		users:     users,
		hasher:    hasher,
		tokens:    tokens,
		validator: validate.New(),
		log:       log,
	}
}

func (s *AuthService) Login(ctx context.Context, in ports.LoginInput) (*ports.TokenPair, error) {
	if err := s.validator.Struct(in); err != nil {
		return nil, err
	}

	user, err := s.activeUser(ctx, in.Username)
	if err != nil {
		return nil, err
	}

	if s.hasher.Compare(user.PasswordHash, in.Password) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	access, err := s.accessToken(user)
	if err != nil {
		return nil, fmt.Errorf("login: sign access token: %w", err)
	}
	refresh, err := s.sign(jwt.MapClaims{
		"username": user.Username,
		"exp":      time.Now().Add(s.tokens.RefreshTTL).Unix(),
	}, s.tokens.RefreshSecret)
	if err != nil {
		return nil, fmt.Errorf("login: sign refresh token: %w", err)
	}

	s.log.Info().Str("username", user.Username).Msg("user logged in")
	return &ports.TokenPair{AccessToken: access, RefreshToken: refresh, User: user}, nil
}

func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	if refreshToken == "" {
		return "", domain.ErrInvalidCredentials
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(refreshToken, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.tokens.RefreshSecret), nil
	})
	if err != nil || !tkn.Valid {
		return "", domain.ErrInvalidToken
	}

	username, _ := claims["username"].(string)
	user, err := s.activeUser(ctx, username)
	if err != nil {
		return "", err
	}

	access, err := s.accessToken(user)
	if err != nil {
		return "", fmt.Errorf("refresh: sign access token: %w", err)
	}
	return access, nil
}

// activeUser resolves username to an active account. Unknown and inactive
// users are indistinguishable to the caller.
func (s *AuthService) activeUser(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	if !user.Active {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

func (s *AuthService) accessToken(user *domain.User) (string, error) {
	return s.sign(jwt.MapClaims{
		"username": user.Username,
		"roles":    user.Roles,
		"exp":      time.Now().Add(s.tokens.AccessTTL).Unix(),
	}, s.tokens.AccessSecret)
}

func (s *AuthService) sign(claims jwt.MapClaims, secret string) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}
