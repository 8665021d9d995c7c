package ports

import (
	"context"
	"time"
)

// CreateNoteInput carries all data needed to create a new note.
type CreateNoteInput struct {
	UserID string `json:"user"  validate:"required"`
	Title  string `json:"title" validate:"required"`
	Text   string `json:"text"  validate:"required"`
	Actor  string `json:"-"`
}

// UpdateNoteInput carries a full note update.
type UpdateNoteInput struct {
	ID        string `json:"id"        validate:"required"`
	UserID    string `json:"user"      validate:"required"`
	Title     string `json:"title"     validate:"required"`
	Text      string `json:"text"      validate:"required"`
	Completed *bool  `json:"completed" validate:"required"`
	Actor     string `json:"-"`
}

// DeleteNoteInput identifies the note to remove.
type DeleteNoteInput struct {
	ID    string `json:"id" validate:"required"`
	Actor string `json:"-"`
}

// NoteView is a note joined with its owner's username, as listed to clients.
type NoteView struct {
	ID           string
	TicketNumber int64
	UserID       string
	Username     string
	Title        string
	Text         string
	Completed    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NoteService defines use-case operations for notes.
type NoteService interface {
	List(ctx context.Context) ([]NoteView, error)
	Create(ctx context.Context, input CreateNoteInput) (*NoteView, error)
	Update(ctx context.Context, input UpdateNoteInput) (*NoteView, error)
	Delete(ctx context.Context, input DeleteNoteInput) (*NoteView, error)
}
