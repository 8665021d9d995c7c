package handler

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/technotes/notes-api/internal/core/domain"
)

// actor returns the username injected by the Auth middleware, or "" on
// routes that run without it.
func actor(c echo.Context) string {
	username, _ := c.Get("username").(string)
	return username
}

// resultLabel maps an operation outcome onto a low-cardinality metric label.
func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrValidation):
		return "validation"
	case errors.Is(err, domain.ErrDuplicate):
		return "duplicate"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrConflict):
		return "conflict"
	default:
		return "error"
	}
}
