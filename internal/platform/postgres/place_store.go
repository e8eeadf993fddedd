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

// PlaceStore implements the store.PlaceStore interface using a
// PostgreSQL database as the storage backend. Amenity links live in
// the place_amenities join table and are written in the same
// transaction as the place row.
type PlaceStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewPlaceStore creates a new PostgreSQL implementation of the
// PlaceStore interface.
func NewPlaceStore(db *sql.DB, log *slog.Logger) *PlaceStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &PlaceStore{
		db:     db,
		logger: log.With(slog.String("component", "place_store")),
	}
}

// Ensure PlaceStore implements store.PlaceStore interface
var _ store.PlaceStore = (*PlaceStore)(nil)

// Create implements store.PlaceStore.Create. The place row and its
// amenity links are inserted atomically.
func (s *PlaceStore) Create(ctx context.Context, place *domain.Place) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		query := `
			INSERT INTO places (id, title, description, price, latitude, longitude,
				owner_id, city_id, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		`
		_, err := tx.ExecContext(
			ctx,
			query,
			place.ID,
			place.Title,
			place.Description,
			place.Price,
			place.Latitude,
			place.Longitude,
			place.OwnerID,
			nullUUID(place.CityID),
			place.CreatedAt,
			place.UpdatedAt,
		)
		if err != nil {
			if isUniqueViolation(err, "") {
				return store.ErrDuplicate
			}
			return mapReferenceError(err, "owner or city")
		}

		return insertAmenityLinks(ctx, tx, place.ID, place.AmenityIDs)
	})

	if err != nil {
		if !store.IsDuplicateError(err) && !store.IsNotFoundError(err) {
			log.Error("failed to create place",
				slog.String("error", err.Error()),
				slog.String("place_id", place.ID.String()))
		}
		return err
	}

	log.Info("place created successfully",
		slog.String("place_id", place.ID.String()),
		slog.String("owner_id", place.OwnerID.String()))
	return nil
}

// GetByID implements store.PlaceStore.GetByID.
func (s *PlaceStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Place, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := placeSelect + ` WHERE id = $1`

	place, err := scanPlaceRow(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrPlaceNotFound
		}
		log.Error("failed to get place by ID",
			slog.String("error", err.Error()),
			slog.String("place_id", id.String()))
		return nil, err
	}

	if err := s.attachAmenityIDs(ctx, place); err != nil {
		return nil, err
	}
	return place, nil
}

// List implements store.PlaceStore.List.
func (s *PlaceStore) List(ctx context.Context) ([]*domain.Place, error) {
	return s.listWhere(ctx, "", nil)
}

// ListByOwner implements store.PlaceStore.ListByOwner.
func (s *PlaceStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Place, error) {
	return s.listWhere(ctx, ` WHERE owner_id = $1`, []any{ownerID})
}

// ListByCity implements store.PlaceStore.ListByCity.
func (s *PlaceStore) ListByCity(ctx context.Context, cityID uuid.UUID) ([]*domain.Place, error) {
	return s.listWhere(ctx, ` WHERE city_id = $1`, []any{cityID})
}

// Update implements store.PlaceStore.Update. The place row and its
// amenity links are rewritten atomically.
func (s *PlaceStore) Update(ctx context.Context, place *domain.Place) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		query := `
			UPDATE places
			SET title = $1, description = $2, price = $3, latitude = $4,
				longitude = $5, city_id = $6, updated_at = $7
			WHERE id = $8
		`
		result, err := tx.ExecContext(
			ctx,
			query,
			place.Title,
			place.Description,
			place.Price,
			place.Latitude,
			place.Longitude,
			nullUUID(place.CityID),
			place.UpdatedAt,
			place.ID,
		)
		if err != nil {
			return mapReferenceError(err, "city")
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if rowsAffected == 0 {
			return store.ErrPlaceNotFound
		}

		if _, err := tx.ExecContext(ctx,
			`DELETE FROM place_amenities WHERE place_id = $1`, place.ID); err != nil {
			return err
		}
		return insertAmenityLinks(ctx, tx, place.ID, place.AmenityIDs)
	})

	if err != nil {
		if !store.IsNotFoundError(err) {
			log.Error("failed to update place",
				slog.String("error", err.Error()),
				slog.String("place_id", place.ID.String()))
		}
		return err
	}

	log.Info("place updated successfully",
		slog.String("place_id", place.ID.String()))
	return nil
}

// Delete implements store.PlaceStore.Delete. The ON DELETE CASCADE on
// place_amenities removes the links with the row.
func (s *PlaceStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM places WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete place",
			slog.String("error", err.Error()),
			slog.String("place_id", id.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return store.ErrPlaceNotFound
	}

	log.Info("place deleted successfully", slog.String("place_id", id.String()))
	return nil
}

// RemoveAmenity implements store.PlaceStore.RemoveAmenity.
func (s *PlaceStore) RemoveAmenity(ctx context.Context, amenityID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	_, err := s.db.ExecContext(ctx,
		`DELETE FROM place_amenities WHERE amenity_id = $1`, amenityID)
	if err != nil {
		log.Error("failed to unlink amenity from places",
			slog.String("error", err.Error()),
			slog.String("amenity_id", amenityID.String()))
		return err
	}
	return nil
}

const placeSelect = `
	SELECT id, title, description, price, latitude, longitude,
		owner_id, city_id, created_at, updated_at
	FROM places`

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlaceRow(row rowScanner) (*domain.Place, error) {
	var place domain.Place
	var cityID uuid.NullUUID

	err := row.Scan(
		&place.ID,
		&place.Title,
		&place.Description,
		&place.Price,
		&place.Latitude,
		&place.Longitude,
		&place.OwnerID,
		&cityID,
		&place.CreatedAt,
		&place.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	place.CityID = cityID.UUID
	place.AmenityIDs = []uuid.UUID{}
	return &place, nil
}

// listWhere runs the shared place select with an optional WHERE clause
// and attaches amenity links to every returned place.
func (s *PlaceStore) listWhere(ctx context.Context, where string, args []any) ([]*domain.Place, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, placeSelect+where+` ORDER BY created_at`, args...)
	if err != nil {
		log.Error("failed to query places", slog.String("error", err.Error()))
		return nil, err
	}
	defer closeRows(rows, log)

	places := []*domain.Place{}
	for rows.Next() {
		place, err := scanPlaceRow(rows)
		if err != nil {
			return nil, err
		}
		places = append(places, place)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, place := range places {
		if err := s.attachAmenityIDs(ctx, place); err != nil {
			return nil, err
		}
	}
	return places, nil
}

// attachAmenityIDs loads the amenity links of one place.
func (s *PlaceStore) attachAmenityIDs(ctx context.Context, place *domain.Place) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx,
		`SELECT amenity_id FROM place_amenities WHERE place_id = $1 ORDER BY amenity_id`,
		place.ID)
	if err != nil {
		log.Error("failed to query place amenities",
			slog.String("error", err.Error()),
			slog.String("place_id", place.ID.String()))
		return err
	}
	defer closeRows(rows, log)

	for rows.Next() {
		var amenityID uuid.UUID
		if err := rows.Scan(&amenityID); err != nil {
			return err
		}
		place.AmenityIDs = append(place.AmenityIDs, amenityID)
	}
	return rows.Err()
}

// insertAmenityLinks inserts one join row per amenity. It takes a
// store.DBTX so it runs inside the Create/Update transactions as well
// as on a bare connection.
func insertAmenityLinks(ctx context.Context, db store.DBTX, placeID uuid.UUID, amenityIDs []uuid.UUID) error {
	for _, amenityID := range amenityIDs {
		_, err := db.ExecContext(ctx,
			`INSERT INTO place_amenities (place_id, amenity_id) VALUES ($1, $2)`,
			placeID, amenityID)
		if err != nil {
			return mapReferenceError(err, "amenity")
		}
	}
	return nil
}

// nullUUID maps uuid.Nil to SQL NULL.
func nullUUID(id uuid.UUID) uuid.NullUUID {
	return uuid.NullUUID{UUID: id, Valid: id != uuid.Nil}
}
