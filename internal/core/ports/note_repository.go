package ports

import (
	"context"

	"github.com/technotes/notes-api/internal/core/domain"
)

// NoteRepository defines persistence operations for notes.
type NoteRepository interface {
	List(ctx context.Context) ([]*domain.Note, error)
	FindByID(ctx context.Context, id string) (*domain.Note, error)
	// FindByTitle matches case-insensitively on the normalized title.
	FindByTitle(ctx context.Context, title string) (*domain.Note, error)
	// ExistsForUser reports whether any note references userID as its owner.
	ExistsForUser(ctx context.Context, userID string) (bool, error)
	Create(ctx context.Context, note *domain.Note) (*domain.Note, error)
	Update(ctx context.Context, note *domain.Note) (*domain.Note, error)
	Delete(ctx context.Context, id string) (*domain.Note, error)
}

// TicketSequence hands out note ticket numbers. Values start at
// domain.FirstTicketNumber and grow by one per call.
type TicketSequence interface {
	Next(ctx context.Context) (int64, error)
}
