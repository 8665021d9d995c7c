package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/technotes/notes-api/internal/api/metrics"
)

const limiterTimeout = 2 * time.Second

// LoginLimitMessage is returned with 429 when an IP exhausts its login attempts.
const LoginLimitMessage = "Too many login attempts from this IP, please try again after a 60 second pause"

// Limiter counts hits per key in fixed windows.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// limiterStore adapts a Limiter to echo's RateLimiterStore. Limiter errors
// are logged and the request is let through.
type limiterStore struct {
	limiter Limiter
	log     zerolog.Logger
}

func (s limiterStore) Allow(identifier string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), limiterTimeout)
	defer cancel()

	ok, err := s.limiter.Allow(ctx, identifier)
	if err != nil {
		s.log.Warn().Err(err).Str("identifier", identifier).Msg("rate limiter unavailable, allowing request")
		return true, nil
	}
	return ok, nil
}

// RateLimit rejects requests from an IP that has used up its window with 429,
// message and a Retry-After header of window.
func RateLimit(limiter Limiter, window time.Duration, message string, log zerolog.Logger) echo.MiddlewareFunc {
	retryAfter := strconv.Itoa(int(window / time.Second))

	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: limiterStore{limiter: limiter, log: log},
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, _ error) error {
			metrics.LoginRateLimitedTotal.Inc()
			log.Warn().Str("ip", identifier).Str("path", c.Path()).Msg("rate limit exceeded")
			c.Response().Header().Set("Retry-After", retryAfter)
			return c.JSON(http.StatusTooManyRequests, map[string]string{"message": message})
		},
	})
}
