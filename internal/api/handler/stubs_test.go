package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/technotes/notes-api/internal/core/domain"
	"github.com/technotes/notes-api/internal/core/ports"
)

type stubUserService struct {
	listFn   func(ctx context.Context) ([]*domain.User, error)
	createFn func(ctx context.Context, in ports.CreateUserInput) (*domain.User, error)
	updateFn func(ctx context.Context, in ports.UpdateUserInput) (*domain.User, error)
	deleteFn func(ctx context.Context, in ports.DeleteUserInput) (*domain.User, error)
}

func (s *stubUserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.listFn(ctx)
}

func (s *stubUserService) Create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	return s.createFn(ctx, in)
}

func (s *stubUserService) Update(ctx context.Context, in ports.UpdateUserInput) (*domain.User, error) {
	return s.updateFn(ctx, in)
}

func (s *stubUserService) Delete(ctx context.Context, in ports.DeleteUserInput) (*domain.User, error) {
	return s.deleteFn(ctx, in)
}

type stubNoteService struct {
	listFn   func(ctx context.Context) ([]ports.NoteView, error)
	createFn func(ctx context.Context, in ports.CreateNoteInput) (*ports.NoteView, error)
	updateFn func(ctx context.Context, in ports.UpdateNoteInput) (*ports.NoteView, error)
	deleteFn func(ctx context.Context, in ports.DeleteNoteInput) (*ports.NoteView, error)
}

func (s *stubNoteService) List(ctx context.Context) ([]ports.NoteView, error) {
	return s.listFn(ctx)
}

func (s *stubNoteService) Create(ctx context.Context, in ports.CreateNoteInput) (*ports.NoteView, error) {
	return s.createFn(ctx, in)
}

func (s *stubNoteService) Update(ctx context.Context, in ports.UpdateNoteInput) (*ports.NoteView, error) {
	return s.updateFn(ctx, in)
}

func (s *stubNoteService) Delete(ctx context.Context, in ports.DeleteNoteInput) (*ports.NoteView, error) {
	return s.deleteFn(ctx, in)
}

type stubAuthService struct {
	loginFn   func(ctx context.Context, in ports.LoginInput) (*ports.TokenPair, error)
	refreshFn func(ctx context.Context, token string) (string, error)
}

func (s *stubAuthService) Login(ctx context.Context, in ports.LoginInput) (*ports.TokenPair, error) {
	return s.loginFn(ctx, in)
}

func (s *stubAuthService) Refresh(ctx context.Context, token string) (string, error) {
	return s.refreshFn(ctx, token)
}

// newJSONContext builds an echo context for method/path with a JSON body.
// An empty body sends no payload at all.
func newJSONContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func boolPtr(b bool) *bool { return &b }
