package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/membuddy/membuddy-api/internal/config"
	"github.com/membuddy/membuddy-api/internal/generation"
	"github.com/membuddy/membuddy-api/internal/platform/logger"
	"github.com/membuddy/membuddy-api/internal/platform/postgres"
	"github.com/membuddy/membuddy-api/internal/service/auth"
	"github.com/membuddy/membuddy-api/internal/store"
)

// application holds the composed dependencies of the running server.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore     store.UserStore
	itemStore     store.MemoryItemStore
	scheduleStore store.ReviewScheduleStore

	jwtService     auth.JWTService
	passwordHasher *auth.BcryptHasher
	generator      generation.Generator
}

// newApplication loads configuration and wires every component together:
// config → logger → database (+ migrations) → stores → services.
func newApplication() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	log.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := setupDatabase(cfg.Database, log)
	if err != nil {
		return nil, err
	}

	if err := postgres.RunMigrations(db, log); err != nil {
		closeDB(db, log)
		return nil, err
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		closeDB(db, log)
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	return &application{
		config:         cfg,
		logger:         log,
		db:             db,
		userStore:      postgres.NewUserStore(db, log),
		itemStore:      postgres.NewMemoryItemStore(db, log),
		scheduleStore:  postgres.NewReviewScheduleStore(db, log),
		jwtService:     jwtService,
		passwordHasher: auth.NewBcryptHasher(cfg.Auth.BcryptCost),
		generator:      generation.NewStaticGenerator(log),
	}, nil
}

// run starts the HTTP server and blocks until shutdown.
func (app *application) run(ctx context.Context) error {
	return app.startHTTPServer(ctx, app.setupRouter())
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		closeDB(app.db, app.logger)
		app.db = nil
	}
}

func closeDB(db *sql.DB, log *slog.Logger) {
	if err := db.Close(); err != nil {
		log.Error("failed to close database connection", "error", err)
	}
}
