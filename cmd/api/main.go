// @title                       Tech Notes API
// @version                     1.0
// @description                 Users, notes and authentication for the tech notes application.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/technotes/notes-api/internal/api"
	"github.com/technotes/notes-api/internal/api/handler"
	"github.com/technotes/notes-api/internal/core/service"
	"github.com/technotes/notes-api/internal/infrastructure/db/mongo"
	"github.com/technotes/notes-api/internal/infrastructure/db/redis"
	"github.com/technotes/notes-api/internal/pkg/config"
	"github.com/technotes/notes-api/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// A missing .env file is fine; the environment may already be set.
	_ = godotenv.Load()

	cfg, err := config.Load(ctx)
	if err != nil {
		l := logger.Init(logger.Options{})
		l.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "notes-api",
	})

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server exited with error")
	}
	log.Info().Msg("http server stopped")
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return err
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mongoClient.Disconnect(disconnectCtx); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect failed")
		}
	}()

	if err := mongo.EnsureIndexes(ctx, db); err != nil {
		return err
	}

	rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		return err
	}
	defer rdb.Close()

	tokens := service.TokenConfig{
		AccessSecret:  cfg.Tokens.AccessSecret,
		RefreshSecret: cfg.Tokens.RefreshSecret,
		AccessTTL:     cfg.Tokens.AccessTTL,
		RefreshTTL:    cfg.Tokens.RefreshTTL,
	}
	if tokens.AccessSecret == "" || tokens.RefreshSecret == "" {
		// Only reachable outside production; tokens do not survive a restart.
		log.Warn().Msg("token secrets not configured, using ephemeral secrets")
		tokens.AccessSecret, tokens.RefreshSecret = uuid.NewString(), uuid.NewString()
	}

	// --- Dependencies ---
	userRepo := mongo.NewUserRepository(db)
	noteRepo := mongo.NewNoteRepository(db)
	activityRepo := mongo.NewActivityRepository(db)
	tickets := mongo.NewTicketSequence(db)
	hasher := service.NewBcryptHasher(service.PasswordCost)

	router := api.NewRouter(api.Dependencies{
		Users:          service.NewUserService(userRepo, noteRepo, hasher, activityRepo, log),
		Notes:          service.NewNoteService(noteRepo, userRepo, tickets, activityRepo, log),
		Auth:           service.NewAuthService(userRepo, hasher, tokens, log),
		AccessSecret:   tokens.AccessSecret,
		RefreshTTL:     tokens.RefreshTTL,
		AllowedOrigins: cfg.AllowedOrigins,
		LoginLimiter:   redis.NewRateLimiter(rdb, "login", cfg.RateLimit.LoginLimit, cfg.RateLimit.LoginWindow),
		LoginWindow:    cfg.RateLimit.LoginWindow,
		Health: map[string]handler.Pinger{
			"mongodb": mongo.Pinger{Client: mongoClient},
			"redis":   redis.Pinger{Client: rdb},
		},
		Logger: log,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("env", cfg.Env).Msg("http server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	case err := <-serverErrors:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
