package domain

import (
	"errors"
	"strings"
)

// Error kinds. Every error the services return on purpose wraps exactly one of
// these so the transport layer can map it to a status code with errors.Is.
var (
	ErrValidation   = errors.New("validation failed")
	ErrDuplicate    = errors.New("duplicate")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

// kindError carries a client-facing message and the kind it belongs to.
type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }
func (e *kindError) Unwrap() error { return e.kind }

func newError(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

var (
	ErrNoUsers           = newError(ErrNotFound, "No users found")
	ErrUserNotFound      = newError(ErrNotFound, "User not found")
	ErrDuplicateUsername = newError(ErrDuplicate, "Duplicate username")
	ErrUserHasNotes      = newError(ErrConflict, "User has assigned notes")

	ErrNoNotes        = newError(ErrNotFound, "No notes found")
	ErrNoteNotFound   = newError(ErrNotFound, "Note not found")
	ErrDuplicateTitle = newError(ErrDuplicate, "Duplicate note title")

	ErrInvalidCredentials = newError(ErrUnauthorized, "Unauthorized")
	ErrInvalidToken       = newError(ErrForbidden, "Forbidden")
)

// FieldError describes a single rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned when request input is missing or malformed.
// It lists every offending field, not only the first one.
type ValidationError struct {
	Fields []FieldError
}

func NewValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return strings.Join(msgs, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }
