package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/hbnb-crew/hbnb-api/internal/domain"
)

// StateStore defines the interface for state data persistence.
type StateStore interface {
	// Create saves a new state. Returns ErrDuplicate on ID collision.
	Create(ctx context.Context, state *domain.State) error

	// GetByID retrieves a state by its unique ID.
	// Returns ErrStateNotFound if the state does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.State, error)

	// List returns all stored states.
	List(ctx context.Context) ([]*domain.State, error)

	// Update replaces an existing state's mutable fields.
	// Returns ErrStateNotFound if the state does not exist.
	Update(ctx context.Context, state *domain.State) error

	// Delete removes a state by its ID.
	// Returns ErrStateNotFound if the state does not exist. Cascading
	// to the state's cities is the facade's responsibility.
	Delete(ctx context.Context, id uuid.UUID) error
}
