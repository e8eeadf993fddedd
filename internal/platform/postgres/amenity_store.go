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

// AmenityStore implements the store.AmenityStore interface using a
// PostgreSQL database as the storage backend.
type AmenityStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewAmenityStore creates a new PostgreSQL implementation of the
// AmenityStore interface.
func NewAmenityStore(db *sql.DB, log *slog.Logger) *AmenityStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &AmenityStore{
		db:     db,
		logger: log.With(slog.String("component", "amenity_store")),
	}
}

// Ensure AmenityStore implements store.AmenityStore interface
var _ store.AmenityStore = (*AmenityStore)(nil)

// Create implements store.AmenityStore.Create.
func (s *AmenityStore) Create(ctx context.Context, amenity *domain.Amenity) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO amenities (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		amenity.ID,
		amenity.Name,
		amenity.CreatedAt,
		amenity.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err, "") {
			return store.ErrDuplicate
		}
		log.Error("failed to create amenity",
			slog.String("error", err.Error()),
			slog.String("amenity_id", amenity.ID.String()))
		return err
	}

	log.Info("amenity created successfully",
		slog.String("amenity_id", amenity.ID.String()),
		slog.String("name", amenity.Name))
	return nil
}

// GetByID implements store.AmenityStore.GetByID.
func (s *AmenityStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Amenity, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM amenities
		WHERE id = $1
	`
	return s.scanAmenity(logger.FromContextOrDefault(ctx, s.logger),
		s.db.QueryRowContext(ctx, query, id))
}

// GetByName implements store.AmenityStore.GetByName.
func (s *AmenityStore) GetByName(ctx context.Context, name string) (*domain.Amenity, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM amenities
		WHERE LOWER(name) = LOWER($1)
	`
	return s.scanAmenity(logger.FromContextOrDefault(ctx, s.logger),
		s.db.QueryRowContext(ctx, query, name))
}

// List implements store.AmenityStore.List.
func (s *AmenityStore) List(ctx context.Context) ([]*domain.Amenity, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, created_at, updated_at
		FROM amenities
		ORDER BY created_at
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query amenities", slog.String("error", err.Error()))
		return nil, err
	}
	defer closeRows(rows, log)

	amenities := []*domain.Amenity{}
	for rows.Next() {
		var amenity domain.Amenity
		if err := rows.Scan(
			&amenity.ID,
			&amenity.Name,
			&amenity.CreatedAt,
			&amenity.UpdatedAt,
		); err != nil {
			return nil, err
		}
		amenities = append(amenities, &amenity)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return amenities, nil
}

// Update implements store.AmenityStore.Update.
func (s *AmenityStore) Update(ctx context.Context, amenity *domain.Amenity) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE amenities
		SET name = $1, updated_at = $2
		WHERE id = $3
	`
	result, err := s.db.ExecContext(ctx, query, amenity.Name, amenity.UpdatedAt, amenity.ID)
	if err != nil {
		log.Error("failed to update amenity",
			slog.String("error", err.Error()),
			slog.String("amenity_id", amenity.ID.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return store.ErrAmenityNotFound
	}

	return nil
}

// Delete implements store.AmenityStore.Delete.
func (s *AmenityStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM amenities WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete amenity",
			slog.String("error", err.Error()),
			slog.String("amenity_id", id.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return store.ErrAmenityNotFound
	}

	return nil
}

func (s *AmenityStore) scanAmenity(log *slog.Logger, row *sql.Row) (*domain.Amenity, error) {
	var amenity domain.Amenity
	err := row.Scan(
		&amenity.ID,
		&amenity.Name,
		&amenity.CreatedAt,
		&amenity.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrAmenityNotFound
		}
		log.Error("failed to scan amenity", slog.String("error", err.Error()))
		return nil, err
	}

	return &amenity, nil
}
