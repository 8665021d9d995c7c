package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/technotes/notes-api/internal/core/domain"
	"github.com/technotes/notes-api/internal/core/ports"
)

const testSecret = "router-secret"

type fakeUsers struct{ ports.UserService }

func (fakeUsers) List(context.Context) ([]*domain.User, error) {
	return []*domain.User{{ID: "u1", Username: "alice"}}, nil
}

type fakeNotes struct{ ports.NoteService }

func (fakeNotes) List(context.Context) ([]ports.NoteView, error) {
	return nil, domain.ErrNoNotes
}

type fakeAuth struct{ ports.AuthService }

type denyAll struct{}

func (denyAll) Allow(context.Context, string) (bool, error) { return false, nil }

func newTestRouter() http.Handler {
	return NewRouter(Dependencies{
		Users:          fakeUsers{},
		Notes:          fakeNotes{},
		Auth:           fakeAuth{},
		AccessSecret:   testSecret,
		RefreshTTL:     time.Hour,
		AllowedOrigins: []string{"http://localhost:3000"},
		LoginLimiter:   denyAll{},
		LoginWindow:    time.Minute,
		Logger:         zerolog.Nop(),
		Registry:       prometheus.NewRegistry(),
	})
}

func bearer(t *testing.T, roles ...string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": "tester",
		"roles":    roles,
		"exp":      time.Now().Add(time.Minute).Unix(),
	}).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return "Bearer " + token
}

func TestRouter_Routes(t *testing.T) {
	router := newTestRouter()

	cases := []struct {
		name   string
		method string
		path   string
		auth   string
		code   int
		body   string
	}{
		{"liveness", http.MethodGet, "/health", "", http.StatusOK, `"ok"`},
		{"metrics", http.MethodGet, "/metrics", "", http.StatusOK, ""},
		{"unknown route", http.MethodGet, "/nope", "", http.StatusNotFound, "404 Not Found"},
		{"users without token", http.MethodGet, "/users", "", http.StatusUnauthorized, "Unauthorized"},
		{"users as employee", http.MethodGet, "/users", bearer(t, domain.RoleEmployee), http.StatusForbidden, "Forbidden"},
		{"users as manager", http.MethodGet, "/users", bearer(t, domain.RoleManager), http.StatusOK, "alice"},
		{"notes empty", http.MethodGet, "/notes", bearer(t, domain.RoleEmployee), http.StatusBadRequest, "No notes found"},
		{"login rate limited", http.MethodPost, "/auth", "", http.StatusTooManyRequests, "Too many login attempts"},
		{"logout without cookie", http.MethodPost, "/auth/logout", "", http.StatusNoContent, ""},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		if tc.auth != "" {
			req.Header.Set("Authorization", tc.auth)
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != tc.code {
			t.Errorf("%s: expected %d, got %d (%s)", tc.name, tc.code, rec.Code, rec.Body.String())
			continue
		}
		if tc.body != "" && !strings.Contains(rec.Body.String(), tc.body) {
			t.Errorf("%s: body %q does not contain %q", tc.name, rec.Body.String(), tc.body)
		}
		if rec.Header().Get("X-Request-Id") == "" {
			t.Errorf("%s: missing request id", tc.name)
		}
	}
}
