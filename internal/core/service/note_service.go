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

const unknownOwner = "unknown"

type NoteService struct {
	notes     ports.NoteRepository
	users     ports.UserRepository
	tickets   ports.TicketSequence
	validator *validate.Validator
	activity  activityRecorder
	log       zerolog.Logger
}

func NewNoteService(
	notes ports.NoteRepository,
	users ports.UserRepository,
	tickets ports.TicketSequence,
	activity ports.ActivityRepository,
	log zerolog.Logger,
) *NoteService {
	return &NoteService{
		notes:     notes,
		users:     users,
		tickets:   tickets,
		validator: validate.New(),
		activity:  activityRecorder{repo: activity, log: log},
		log:       log,
	}
}

// List returns every note joined with its owner's username.
func (s *NoteService) List(ctx context.Context) ([]ports.NoteView, error) {
	notes, err := s.notes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	if len(notes) == 0 {
		return nil, domain.ErrNoNotes
	}

	usernames := make(map[string]string)
	views := make([]ports.NoteView, 0, len(notes))
	for _, n := range notes {
		name, ok := usernames[n.UserID]
		if !ok {
			name, err = s.ownerName(ctx, n.UserID)
			if err != nil {
				return nil, fmt.Errorf("list notes: %w", err)
			}
			usernames[n.UserID] = name
		}
		views = append(views, toNoteView(n, name))
	}
	return views, nil
}

// Create stores a new note with the next ticket number.
func (s *NoteService) Create(ctx context.Context, in ports.CreateNoteInput) (*ports.NoteView, error) {
	if err := s.validator.Struct(in); err != nil {
		return nil, err
	}

	owner, err := s.owner(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if err := s.ensureTitleFree(ctx, in.Title, ""); err != nil {
		return nil, err
	}

	ticket, err := s.tickets.Next(ctx)
	if err != nil {
		return nil, fmt.Errorf("create note: next ticket: %w", err)
	}

	now := time.Now().UTC()
	created, err := s.notes.Create(ctx, &domain.Note{
		TicketNumber: ticket,
		UserID:       owner.ID,
		Title:        in.Title,
		Text:         in.Text,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateTitle) {
			return nil, err
		}
		return nil, fmt.Errorf("create note: %w", err)
	}

	s.log.Info().Str("note_id", created.ID).Int64("ticket", created.TicketNumber).Str("user_id", owner.ID).Msg("note created")
	s.activity.record(ctx, domain.EntityNote, created.ID, domain.ActionCreated, in.Actor)

	view := toNoteView(created, owner.Username)
	return &view, nil
}

// Update overwrites owner, title, text and completion state.
func (s *NoteService) Update(ctx context.Context, in ports.UpdateNoteInput) (*ports.NoteView, error) {
	if err := s.validator.Struct(in); err != nil {
		return nil, err
	}

	note, err := s.notes.FindByID(ctx, in.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNoteNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("update note: %w", err)
	}

	owner, err := s.owner(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if err := s.ensureTitleFree(ctx, in.Title, note.ID); err != nil {
		return nil, err
	}

	note.UserID = owner.ID
	note.Title = in.Title
	note.Text = in.Text
	note.Completed = *in.Completed
	note.UpdatedAt = time.Now().UTC()

	updated, err := s.notes.Update(ctx, note)
	if err != nil {
		if errors.Is(err, domain.ErrNoteNotFound) || errors.Is(err, domain.ErrDuplicateTitle) {
			return nil, err
		}
		return nil, fmt.Errorf("update note: %w", err)
	}

	s.log.Info().Str("note_id", updated.ID).Bool("completed", updated.Completed).Msg("note updated")
	s.activity.record(ctx, domain.EntityNote, updated.ID, domain.ActionUpdated, in.Actor)

	view := toNoteView(updated, owner.Username)
	return &view, nil
}

// Delete removes a note. Unlike users, a blank id is a validation error.
func (s *NoteService) Delete(ctx context.Context, in ports.DeleteNoteInput) (*ports.NoteView, error) {
	if err := s.validator.Struct(in); err != nil {
		return nil, err
	}

	deleted, err := s.notes.Delete(ctx, in.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNoteNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("delete note: %w", err)
	}

	s.log.Info().Str("note_id", deleted.ID).Int64("ticket", deleted.TicketNumber).Msg("note deleted")
	s.activity.record(ctx, domain.EntityNote, deleted.ID, domain.ActionDeleted, in.Actor)

	name, err := s.ownerName(ctx, deleted.UserID)
	if err != nil {
		name = unknownOwner
	}
	view := toNoteView(deleted, name)
	return &view, nil
}

func (s *NoteService) owner(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("find note owner: %w", err)
	}
	return user, nil
}

// ownerName resolves a username, falling back to "unknown" for owners that
// no longer exist.
func (s *NoteService) ownerName(ctx context.Context, userID string) (string, error) {
	user, err := s.users.FindByID(ctx, userID)
	if errors.Is(err, domain.ErrUserNotFound) {
		return unknownOwner, nil
	}
	if err != nil {
		return "", err
	}
	return user.Username, nil
}

func (s *NoteService) ensureTitleFree(ctx context.Context, title, selfID string) error {
	existing, err := s.notes.FindByTitle(ctx, title)
	switch {
	case errors.Is(err, domain.ErrNoteNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("check note title: %w", err)
	case existing.ID != selfID:
		return domain.ErrDuplicateTitle
	default:
		return nil
	}
}

func toNoteView(n *domain.Note, username string) ports.NoteView {
	return ports.NoteView{
		ID:           n.ID,
		TicketNumber: n.TicketNumber,
		UserID:       n.UserID,
		Username:     username,
		Title:        n.Title,
		Text:         n.Text,
		Completed:    n.Completed,
		CreatedAt:    n.CreatedAt,
		UpdatedAt:    n.UpdatedAt,
	}
}
