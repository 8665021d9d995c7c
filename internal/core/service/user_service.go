package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/technotes/notes-api/internal/core/domain"
	"github.com/technotes/notes-api/internal/core/ports"
	"github.com/technotes/notes-api/internal/pkg/validate"
)

// UserService implements the user lifecycle: list, create, update, delete.
type UserService struct {
	users     ports.UserRepository
	notes     ports.NoteRepository
	hasher    ports.PasswordHasher
	validator *validate.Validator
	activity  activityRecorder
	log       zerolog.Logger
}

func NewUserService(
	users ports.UserRepository,
	notes ports.NoteRepository,
	hasher ports.PasswordHasher,
	activity ports.ActivityRepository,
	log zerolog.Logger,
) *UserService {
	return &UserService{
		users:     users,
		notes:     notes,
		hasher:    hasher,
		validator: validate.New(),
		activity:  activityRecorder{repo: activity, log: log},
		log:       log,
	}
}

// List returns every user. An empty collection is reported as domain.ErrNoUsers.
func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	if len(users) == 0 {
		return nil, domain.ErrNoUsers
	}
	return users, nil
}

// Create registers a new user after checking for a case-insensitive
// username clash.
func (s *UserService) Create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	if err := s.validator.Struct(in); err != nil {
		return nil, err
	}

	if err := s.ensureUsernameFree(ctx, in.Username, ""); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("create user: hash password: %w", err)
	}

	roles := domain.UniqueRoles(in.Roles)
	if len(roles) == 0 {
		roles = append([]string(nil), domain.DefaultRoles...)
	}

	now := time.Now().UTC()
	created, err := s.users.Create(ctx, &domain.User{
		Username:     in.Username,
		PasswordHash: hash,
		Roles:        roles,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateUsername) {
			return nil, err
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info().Str("user_id", created.ID).Str("username", created.Username).Msg("user created")
	s.activity.record(ctx, domain.EntityUser, created.ID, domain.ActionCreated, in.Actor)

	return created, nil
}

// Update overwrites username, roles and active status, and the password
// hash when a new password is supplied.
func (s *UserService) Update(ctx context.Context, in ports.UpdateUserInput) (*domain.User, error) {
	if err := s.validator.Struct(in); err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, in.ID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("update user: %w", err)
	}

	if err := s.ensureUsernameFree(ctx, in.Username, user.ID); err != nil {
		return nil, err
	}

	user.Username = in.Username
	user.Roles = domain.UniqueRoles(in.Roles)
	user.Active = *in.Active
	user.UpdatedAt = time.Now().UTC()

	if in.Password != "" {
		hash, err := s.hasher.Hash(in.Password)
		if err != nil {
			return nil, fmt.Errorf("update user: hash password: %w", err)
		}
		user.PasswordHash = hash
	}

	updated, err := s.users.Update(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrDuplicateUsername) {
			return nil, err
		}
		return nil, fmt.Errorf("update user: %w", err)
	}

	s.log.Info().Str("user_id", updated.ID).Str("username", updated.Username).Bool("active", updated.Active).Msg("user updated")
	s.activity.record(ctx, domain.EntityUser, updated.ID, domain.ActionUpdated, in.Actor)

	return updated, nil
}

// Delete removes a user that owns no notes. A blank id is a no-op that
// returns (nil, nil) so the caller can answer with a prompt instead of an error.
//
// The existence lookup does not short-circuit: a miss is logged and the delete
// is still attempted, which then reports domain.ErrUserNotFound itself.
func (s *UserService) Delete(ctx context.Context, in ports.DeleteUserInput) (*domain.User, error) {
	if in.ID == "" {
		return nil, nil
	}

	hasNotes, err := s.notes.ExistsForUser(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("delete user: check notes: %w", err)
	}
	if hasNotes {
		return nil, domain.ErrUserHasNotes
	}

	if _, err := s.users.FindByID(ctx, in.ID); err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			return nil, fmt.Errorf("delete user: %w", err)
		}
		s.log.Warn().Str("user_id", in.ID).Msg("delete requested for unknown user")
	}

	deleted, err := s.users.Delete(ctx, in.ID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("delete user: %w", err)
	}

	s.log.Info().Str("user_id", deleted.ID).Str("username", deleted.Username).Msg("user deleted")
	s.activity.record(ctx, domain.EntityUser, deleted.ID, domain.ActionDeleted, in.Actor)

	return deleted, nil
}

// ensureUsernameFree fails with domain.ErrDuplicateUsername when another user
// (any user other than selfID) already holds username, ignoring case.
func (s *UserService) ensureUsernameFree(ctx context.Context, username, selfID string) error {
	existing, err := s.users.FindByUsername(ctx, username)
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("check username: %w", err)
	case existing.ID != selfID:
		return domain.ErrDuplicateUsername
	default:
		return nil
	}
}
