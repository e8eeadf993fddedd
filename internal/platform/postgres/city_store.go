package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hbnb-crew/hbnb-api/internal/domain"
	"github.com/hbnb-crew/hbnb-api/internal/platform/logger"
	"github.com/hbnb-crew/hbnb-api/internal/store"
)

// CityStore implements the store.CityStore interface using a PostgreSQL
// database as the storage backend.
type CityStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewCityStore creates a new PostgreSQL implementation of the
// CityStore interface.
func NewCityStore(db *sql.DB, log *slog.Logger) *CityStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &CityStore{
		db:     db,
		logger: log.With(slog.String("component", "city_store")),
	}
}

// Ensure CityStore implements store.CityStore interface
var _ store.CityStore = (*CityStore)(nil)

// Create implements store.CityStore.Create.
func (s *CityStore) Create(ctx context.Context, city *domain.City) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO cities (id, name, state_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(ctx, query, city.ID, city.Name, city.StateID, city.CreatedAt, city.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err, "") {
			return store.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return mapReferenceError(err, "state")
		}
		log.Error("failed to create city",
			slog.String("error", err.Error()),
			slog.String("city_id", city.ID.String()))
		return err
	}

	log.Info("city created successfully",
		slog.String("city_id", city.ID.String()),
		slog.String("state_id", city.StateID.String()))
	return nil
}

// GetByID implements store.CityStore.GetByID.
func (s *CityStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.City, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := citySelect + ` WHERE id = $1`

	var city domain.City
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&city.ID,
		&city.Name,
		&city.StateID,
		&city.CreatedAt,
		&city.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrCityNotFound
		}
		log.Error("failed to get city by ID",
			slog.String("error", err.Error()),
			slog.String("city_id", id.String()))
		return nil, err
	}

	return &city, nil
}

// List implements store.CityStore.List.
func (s *CityStore) List(ctx context.Context) ([]*domain.City, error) {
	return s.listWhere(ctx, "", nil)
}

// ListByState implements store.CityStore.ListByState.
func (s *CityStore) ListByState(ctx context.Context, stateID uuid.UUID) ([]*domain.City, error) {
	return s.listWhere(ctx, ` WHERE state_id = $1`, []any{stateID})
}

// Update implements store.CityStore.Update. The state reference is
// fixed at creation, so only the name changes.
func (s *CityStore) Update(ctx context.Context, city *domain.City) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE cities
		SET name = $1, updated_at = $2
		WHERE id = $3
	`
	result, err := s.db.ExecContext(ctx, query, city.Name, city.UpdatedAt, city.ID)
	if err != nil {
		log.Error("failed to update city",
			slog.String("error", err.Error()),
			slog.String("city_id", city.ID.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return store.ErrCityNotFound
	}

	return nil
}

// Delete implements store.CityStore.Delete.
func (s *CityStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM cities WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete city",
			slog.String("error", err.Error()),
			slog.String("city_id", id.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return store.ErrCityNotFound
	}

	return nil
}

const citySelect = `
	SELECT id, name, state_id, created_at, updated_at
	FROM cities`

func (s *CityStore) listWhere(ctx context.Context, where string, args []any) ([]*domain.City, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, citySelect+where+` ORDER BY created_at`, args...)
	if err != nil {
		log.Error("failed to query cities", slog.String("error", err.Error()))
		return nil, err
	}
	defer closeRows(rows, log)

	cities := []*domain.City{}
	for rows.Next() {
		var city domain.City
		if err := rows.Scan(
			&city.ID,
			&city.Name,
			&city.StateID,
			&city.CreatedAt,
			&city.UpdatedAt,
		); err != nil {
			return nil, err
		}
		cities = append(cities, &city)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return cities, nil
}
