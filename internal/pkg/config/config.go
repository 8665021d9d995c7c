package config

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=3500"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// AllowedOrigins is a comma-separated list, e.g. "https://a.example,https://b.example".
	AllowedOrigins []string `env:"ALLOWED_ORIGINS, default=http://localhost:3000"`

	Mongo     MongoConfig
	Redis     RedisConfig
	Tokens    TokenConfig
	RateLimit RateLimitConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=technotes"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type TokenConfig struct {
	AccessSecret  string        `env:"ACCESS_TOKEN_SECRET"`
	RefreshSecret string        `env:"REFRESH_TOKEN_SECRET"`
	AccessTTL     time.Duration `env:"ACCESS_TOKEN_TTL,  default=15m"`
	RefreshTTL    time.Duration `env:"REFRESH_TOKEN_TTL, default=168h"`
}

type RateLimitConfig struct {
	LoginLimit  int           `env:"LOGIN_RATE_LIMIT,  default=5"`
	LoginWindow time.Duration `env:"LOGIN_RATE_WINDOW, default=1m"`
}

// IsProduction reports whether ENV names a production deployment.
func (c *Config) IsProduction() bool {
	switch strings.ToLower(c.Env) {
	case "production", "prod":
		return true
	}
	return false
}

// Validate rejects settings the server cannot run with. Token secrets may
// only be omitted outside production.
func (c *Config) Validate() error {
	var errs []error
	if c.IsProduction() {
		if c.Tokens.AccessSecret == "" {
			errs = append(errs, errors.New("ACCESS_TOKEN_SECRET is required in production"))
		}
		if c.Tokens.RefreshSecret == "" {
			errs = append(errs, errors.New("REFRESH_TOKEN_SECRET is required in production"))
		}
	}
	if c.Tokens.AccessSecret != "" && c.Tokens.AccessSecret == c.Tokens.RefreshSecret {
		errs = append(errs, errors.New("ACCESS_TOKEN_SECRET and REFRESH_TOKEN_SECRET must differ"))
	}
	if c.Tokens.AccessTTL <= 0 || c.Tokens.RefreshTTL <= 0 {
		errs = append(errs, errors.New("token TTLs must be positive"))
	}
	if c.RateLimit.LoginLimit <= 0 || c.RateLimit.LoginWindow <= 0 {
		errs = append(errs, errors.New("LOGIN_RATE_LIMIT and LOGIN_RATE_WINDOW must be positive"))
	}
	return errors.Join(errs...)
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
