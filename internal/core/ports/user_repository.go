package ports

import (
	"context"

	"github.com/technotes/notes-api/internal/core/domain"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	List(ctx context.Context) ([]*domain.User, error)
	// FindByID returns domain.ErrUserNotFound for unknown or malformed ids.
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindByUsername matches case-insensitively on the normalized username.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// Create returns domain.ErrDuplicateUsername when the unique index rejects the insert.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	// Delete removes the user and returns the deleted document.
	Delete(ctx context.Context, id string) (*domain.User, error)
}

// PasswordHasher is the one-way credential hashing capability.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Compare(hash, plaintext string) error
}
