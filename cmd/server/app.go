package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/hbnb-crew/hbnb-api/internal/config"
	"github.com/hbnb-crew/hbnb-api/internal/platform/logger"
	"github.com/hbnb-crew/hbnb-api/internal/platform/memory"
	"github.com/hbnb-crew/hbnb-api/internal/platform/postgres"
	"github.com/hbnb-crew/hbnb-api/internal/service"
	"github.com/hbnb-crew/hbnb-api/internal/service/auth"
)

// application holds the initialized components of the server: the
// configuration, the logger, the storage-backed facade, and the
// authentication services. It is built once at startup and owns
// cleanup of its resources.
type application struct {
	config     *config.Config
	logger     *slog.Logger
	facade     *service.Facade
	jwtService auth.JWTService

	// db is non-nil only with the postgres backend.
	db *sql.DB
}

// newApplication loads configuration and wires every component of the
// server. The storage backend (memory or postgres) is selected by
// configuration; with postgres, pending schema migrations are applied
// before any store is used.
func newApplication() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	app := &application{
		config: cfg,
		logger: appLogger,
	}

	deps := service.FacadeDeps{
		Hasher: auth.NewBcryptHasher(cfg.Auth.BcryptCost),
		Logger: appLogger,
	}

	switch cfg.Storage.Backend {
	case "postgres":
		db, err := setupAppDatabase(cfg, appLogger)
		if err != nil {
			return nil, err
		}
		if err := postgres.RunMigrations(db); err != nil {
			closeDatabase(db, appLogger)
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		app.db = db

		deps.Users = postgres.NewUserStore(db, appLogger)
		deps.Places = postgres.NewPlaceStore(db, appLogger)
		deps.Reviews = postgres.NewReviewStore(db, appLogger)
		deps.Amenities = postgres.NewAmenityStore(db, appLogger)
		deps.States = postgres.NewStateStore(db, appLogger)
		deps.Cities = postgres.NewCityStore(db, appLogger)

	case "memory":
		deps.Users = memory.NewUserStore()
		deps.Places = memory.NewPlaceStore()
		deps.Reviews = memory.NewReviewStore()
		deps.Amenities = memory.NewAmenityStore()
		deps.States = memory.NewStateStore()
		deps.Cities = memory.NewCityStore()

	default:
		return nil, fmt.Errorf("unknown storage backend: %q", cfg.Storage.Backend)
	}

	facade, err := service.NewFacade(deps)
	if err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to create facade: %w", err)
	}
	app.facade = facade

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}
	app.jwtService = jwtService

	return app, nil
}

// cleanup releases the application's resources. Safe to call more than
// once.
func (app *application) cleanup() {
	if app.db != nil {
		closeDatabase(app.db, app.logger)
		app.db = nil
	}
}
