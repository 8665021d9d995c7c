package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func runAuth(t *testing.T, header string) (*httptest.ResponseRecorder, echo.Context, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth("secret")(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, c, called
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	token := signToken(t, "secret", jwt.MapClaims{
		"username": "alice",
		"roles":    []string{"Employee", "Manager"},
		"exp":      time.Now().Add(time.Minute).Unix(),
	})

	rec, c, called := runAuth(t, "Bearer "+token)
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if c.Get("username") != "alice" {
		t.Fatalf("username not set")
	}
	roles, _ := c.Get("roles").([]string)
	if len(roles) != 2 || roles[1] != "Manager" {
		t.Fatalf("roles not set: %v", c.Get("roles"))
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	rec, _, called := runAuth(t, "")
	if called {
		t.Fatalf("should not reach next")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_InvalidHeaderFormat(t *testing.T) {
	rec, _, called := runAuth(t, "Token abc")
	if called {
		t.Fatalf("should not reach next")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	rec, _, called := runAuth(t, "Bearer not-a-token")
	if called {
		t.Fatalf("should not reach next")
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestAuthMiddleware_ExpiredOrForeignToken(t *testing.T) {
	expired := signToken(t, "secret", jwt.MapClaims{"username": "alice", "exp": time.Now().Add(-time.Minute).Unix()})
	foreign := signToken(t, "other", jwt.MapClaims{"username": "alice"})

	for name, token := range map[string]string{"expired": expired, "wrong secret": foreign} {
		rec, _, called := runAuth(t, "Bearer "+token)
		if called || rec.Code != http.StatusForbidden {
			t.Errorf("%s: expected 403 without calling next, got %d (called=%v)", name, rec.Code, called)
		}
	}
}

func TestRolesClaim(t *testing.T) {
	roles := rolesClaim([]any{"Admin", 7, "Employee"})
	if len(roles) != 2 || roles[0] != "Admin" || roles[1] != "Employee" {
		t.Fatalf("unexpected roles: %v", roles)
	}
	if got := rolesClaim("Admin"); len(got) != 0 {
		t.Fatalf("non-list claim must yield no roles, got %v", got)
	}
}
