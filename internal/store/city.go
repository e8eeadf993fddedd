package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/hbnb-crew/hbnb-api/internal/domain"
)

// CityStore defines the interface for city data persistence.
type CityStore interface {
	// Create saves a new city. Returns ErrDuplicate on ID collision.
	Create(ctx context.Context, city *domain.City) error

	// GetByID retrieves a city by its unique ID.
	// Returns ErrCityNotFound if the city does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.City, error)

	// List returns all stored cities.
	List(ctx context.Context) ([]*domain.City, error)

	// ListByState returns all cities belonging to the given state.
	ListByState(ctx context.Context, stateID uuid.UUID) ([]*domain.City, error)

	// Update replaces an existing city's mutable fields.
	// Returns ErrCityNotFound if the city does not exist.
	Update(ctx context.Context, city *domain.City) error

	// Delete removes a city by its ID.
	// Returns ErrCityNotFound if the city does not exist. Cascading to
	// the city's places is the facade's responsibility.
	Delete(ctx context.Context, id uuid.UUID) error
}
