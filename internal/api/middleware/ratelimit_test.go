package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// countingLimiter allows limit hits per key and then denies.
type countingLimiter struct {
	limit int
	hits  map[string]int
	err   error
}

func (l *countingLimiter) Allow(_ context.Context, key string) (bool, error) {
	if l.err != nil {
		return false, l.err
	}
	if l.hits == nil {
		l.hits = map[string]int{}
	}
	l.hits[key]++
	return l.hits[key] <= l.limit, nil
}

func newLimitedEcho(l Limiter) *echo.Echo {
	e := echo.New()
	e.POST("/auth", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, RateLimit(l, time.Minute, LoginLimitMessage, zerolog.Nop()))
	return e
}

func post(e *echo.Echo, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/auth", nil)
	req.RemoteAddr = ip + ":12345"
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRateLimit_SixthAttemptRejected(t *testing.T) {
	e := newLimitedEcho(&countingLimiter{limit: 5})

	for i := 1; i <= 5; i++ {
		if rec := post(e, "10.0.0.1"); rec.Code != http.StatusOK {
			t.Fatalf("attempt %d: expected 200, got %d", i, rec.Code)
		}
	}

	rec := post(e, "10.0.0.1")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
	if rec.Header().Get("Retry-After") != "60" {
		t.Errorf("unexpected Retry-After %q", rec.Header().Get("Retry-After"))
	}

	if rec := post(e, "10.0.0.2"); rec.Code != http.StatusOK {
		t.Fatalf("other IP: expected 200, got %d", rec.Code)
	}
}

func TestRateLimit_FailsOpen(t *testing.T) {
	e := newLimitedEcho(&countingLimiter{err: errors.New("redis down")})

	for i := 0; i < 10; i++ {
		if rec := post(e, "10.0.0.1"); rec.Code != http.StatusOK {
			t.Fatalf("attempt %d: expected 200 while limiter is down, got %d", i, rec.Code)
		}
	}
}
