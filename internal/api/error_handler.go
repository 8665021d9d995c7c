package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/technotes/notes-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Message string              `json:"message"`
	Fields  []domain.FieldError `json:"fields,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps domain error kinds to their HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"message": "<message>", "fields": [...]}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, errorResponse{Message: ve.Error(), Fields: ve.Fields}
	}

	// Echo's own errors (router 404/405, middleware rejections).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Code == http.StatusNotFound {
			return he.Code, errorResponse{Message: "404 Not Found"}
		}
		return he.Code, errorResponse{Message: fmt.Sprintf("%v", he.Message)}
	}

	// Domain error kinds → deterministic HTTP codes. NotFound and Conflict
	// are reported as 400, as existing clients expect.
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, errorResponse{Message: err.Error()}
	case errors.Is(err, domain.ErrDuplicate):
		return http.StatusConflict, errorResponse{Message: err.Error()}
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrConflict):
		return http.StatusBadRequest, errorResponse{Message: err.Error()}
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, errorResponse{Message: err.Error()}
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, errorResponse{Message: err.Error()}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{Message: "internal server error"}
}
