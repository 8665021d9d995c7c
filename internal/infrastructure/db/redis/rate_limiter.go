package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter is a fixed-window counter backed by Redis.
// Key format: ratelimit:<scope>:<key>
type RateLimiter struct {
	client *redis.Client
	scope  string
	limit  int64
	window time.Duration
}

// NewRateLimiter allows limit hits per window for each key within scope.
func NewRateLimiter(client *redis.Client, scope string, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{client: client, scope: scope, limit: int64(limit), window: window}
}

// Allow counts one hit for key and reports whether it fits in the current
// window. The window starts with the first hit and is not extended by later ones.
// SET NX with a TTL opens the window; INCR keeps the TTL, so no Redis 7
// EXPIRE options are needed.
func (l *RateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := l.key(key)

	var incr *redis.IntCmd
	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SetNX(ctx, k, 0, l.window)
		incr = pipe.Incr(ctx, k)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("rate limit %s: %w", l.scope, err)
	}

	return incr.Val() <= l.limit, nil
}

// Window is the length of one counting window.
func (l *RateLimiter) Window() time.Duration {
	return l.window
}

func (l *RateLimiter) key(key string) string {
	return fmt.Sprintf("ratelimit:%s:%s", l.scope, key)
}
