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

// StateStore implements the store.StateStore interface using a
// PostgreSQL database as the storage backend.
type StateStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewStateStore creates a new PostgreSQL implementation of the
// StateStore interface.
func NewStateStore(db *sql.DB, log *slog.Logger) *StateStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &StateStore{
		db:     db,
		logger: log.With(slog.String("component", "state_store")),
	}
}

// Ensure StateStore implements store.StateStore interface
var _ store.StateStore = (*StateStore)(nil)

// Create implements store.StateStore.Create.
func (s *StateStore) Create(ctx context.Context, state *domain.State) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO states (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := s.db.ExecContext(ctx, query, state.ID, state.Name, state.CreatedAt, state.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err, "") {
			return store.ErrDuplicate
		}
		log.Error("failed to create state",
			slog.String("error", err.Error()),
			slog.String("state_id", state.ID.String()))
		return err
	}

	log.Info("state created successfully",
		slog.String("state_id", state.ID.String()),
		slog.String("name", state.Name))
	return nil
}

// GetByID implements store.StateStore.GetByID.
func (s *StateStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.State, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, created_at, updated_at
		FROM states
		WHERE id = $1
	`
	var state domain.State
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&state.ID,
		&state.Name,
		&state.CreatedAt,
		&state.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrStateNotFound
		}
		log.Error("failed to get state by ID",
			slog.String("error", err.Error()),
			slog.String("state_id", id.String()))
		return nil, err
	}

	return &state, nil
}

// List implements store.StateStore.List.
func (s *StateStore) List(ctx context.Context) ([]*domain.State, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, created_at, updated_at
		FROM states
		ORDER BY created_at
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query states", slog.String("error", err.Error()))
		return nil, err
	}
	defer closeRows(rows, log)

	states := []*domain.State{}
	for rows.Next() {
		var state domain.State
		if err := rows.Scan(
			&state.ID,
			&state.Name,
			&state.CreatedAt,
			&state.UpdatedAt,
		); err != nil {
			return nil, err
		}
		states = append(states, &state)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return states, nil
}

// Update implements store.StateStore.Update.
func (s *StateStore) Update(ctx context.Context, state *domain.State) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE states
		SET name = $1, updated_at = $2
		WHERE id = $3
	`
	result, err := s.db.ExecContext(ctx, query, state.Name, state.UpdatedAt, state.ID)
	if err != nil {
		log.Error("failed to update state",
			slog.String("error", err.Error()),
			slog.String("state_id", state.ID.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return store.ErrStateNotFound
	}

	return nil
}

// Delete implements store.StateStore.Delete.
func (s *StateStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM states WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete state",
			slog.String("error", err.Error()),
			slog.String("state_id", id.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return store.ErrStateNotFound
	}

	return nil
}
