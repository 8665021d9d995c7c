package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/technotes/notes-api/docs"
	"github.com/technotes/notes-api/internal/api/handler"
	"github.com/technotes/notes-api/internal/api/middleware"
	"github.com/technotes/notes-api/internal/core/domain"
	"github.com/technotes/notes-api/internal/core/ports"
)

// Dependencies groups everything the router needs. Services are built by the
// caller so that tests can pass stubs.
type Dependencies struct {
	Users ports.UserService
	Notes ports.NoteService
	Auth  ports.AuthService

	AccessSecret   string
	RefreshTTL     time.Duration
	AllowedOrigins []string

	LoginLimiter middleware.Limiter
	LoginWindow  time.Duration

	Health map[string]handler.Pinger
	Logger zerolog.Logger

	// Registry receives the HTTP metrics and backs /metrics. Nil means the
	// Prometheus default registry.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.RequestLogger(deps.Logger))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     deps.AllowedOrigins,
		AllowCredentials: true,
	}))
	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if deps.Registry != nil {
		registerer, gatherer = deps.Registry, deps.Registry
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "notes",
		Registerer: registerer,
	}))

	// --- Operational endpoints (no auth required) ---
	health := handler.NewHealthHandler(deps.Health)
	e.GET("/health", health.Liveness)        // liveness  – is the process alive?
	e.GET("/health/ready", health.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Auth routes ---
	authHandler := handler.NewAuthHandler(deps.Auth, deps.RefreshTTL)
	auth := e.Group("/auth")
	if deps.LoginLimiter != nil {
		auth.POST("", authHandler.Login, middleware.RateLimit(deps.LoginLimiter, deps.LoginWindow, middleware.LoginLimitMessage, deps.Logger))
	} else {
		auth.POST("", authHandler.Login)
	}
	auth.GET("/refresh", authHandler.Refresh)
	auth.POST("/logout", authHandler.Logout)

	requireAuth := middleware.Auth(deps.AccessSecret)

	// --- Users (managers and admins only) ---
	userHandler := handler.NewUserHandler(deps.Users)
	users := e.Group("/users", requireAuth, middleware.RBAC(domain.RoleManager, domain.RoleAdmin))
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create)
	users.PATCH("", userHandler.Update)
	users.DELETE("", userHandler.Delete)

	// --- Notes ---
	noteHandler := handler.NewNoteHandler(deps.Notes)
	notes := e.Group("/notes", requireAuth)
	notes.GET("", noteHandler.List)
	notes.POST("", noteHandler.Create)
	notes.PATCH("", noteHandler.Update)
	notes.DELETE("", noteHandler.Delete)

	return e
}
