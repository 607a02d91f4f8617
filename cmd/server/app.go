package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/myflix/myflix-api/internal/config"
	"github.com/myflix/myflix-api/internal/platform/postgres"
	"github.com/myflix/myflix-api/internal/service"
	"github.com/myflix/myflix-api/internal/service/auth"
	"github.com/myflix/myflix-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	userStore  store.UserStore
	movieStore store.MovieStore

	// Authentication
	jwtService       auth.JWTService
	passwordHasher   auth.PasswordHasher
	passwordStrategy *auth.PasswordStrategy
	bearerStrategy   *auth.BearerTokenStrategy

	// Service layer
	userService service.UserService
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration, logger, and
// database connection that must be established before application
// initialization.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	// Initialize JWT service; fails if the signing secret is missing or too
	// short, so the server never starts in an unsigned-token configuration.
	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	// Initialize password hashing
	app.passwordHasher = auth.NewBcryptHasher(cfg.Auth.BcryptCost)

	// Initialize stores
	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.movieStore = postgres.NewPostgresMovieStore(db, logger)

	// Authentication strategies
	app.passwordStrategy = auth.NewPasswordStrategy(app.userStore, app.passwordHasher)
	app.bearerStrategy = auth.NewBearerTokenStrategy(app.jwtService, app.userStore)

	// Initialize user service
	app.userService = service.NewUserService(
		app.userStore,
		app.movieStore,
		app.passwordHasher,
		db,
		logger,
	)

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	err := app.startHTTPServer(ctx, router)
	if err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
