package ports

import (
	"context"

	"github.com/technotes/notes-api/internal/core/domain"
)

// CreateUserInput is the DTO passed from the transport layer to UserService.Create.
// Roles may be nil; the service then assigns domain.DefaultRoles.
type CreateUserInput struct {
	Username string   `json:"username" validate:"required"`
	Password string   `json:"password" validate:"required"`
	Roles    []string `json:"roles"    validate:"omitempty,dive,role"`
	Actor    string   `json:"-"`
}

// UpdateUserInput carries a full user update. Active is a pointer so that a
// missing value can be told apart from false.
type UpdateUserInput struct {
	ID       string   `json:"id"       validate:"required"`
	Username string   `json:"username" validate:"required"`
	Roles    []string `json:"roles"    validate:"required,min=1,dive,role"`
	Active   *bool    `json:"active"   validate:"required"`
	Password string   `json:"password"`
	Actor    string   `json:"-"`
}

// DeleteUserInput identifies the user to remove.
type DeleteUserInput struct {
	ID    string
	Actor string
}

// UserService defines use-case operations for users.
type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, input UpdateUserInput) (*domain.User, error)
	// Delete returns a nil user and nil error when input.ID is blank.
	Delete(ctx context.Context, input DeleteUserInput) (*domain.User, error)
}
