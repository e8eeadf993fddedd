package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/hbnb-crew/hbnb-api/internal/domain"
)

// AmenityStore defines the interface for amenity data persistence.
type AmenityStore interface {
	// Create saves a new amenity. Returns ErrDuplicate on ID collision.
	Create(ctx context.Context, amenity *domain.Amenity) error

	// GetByID retrieves an amenity by its unique ID.
	// Returns ErrAmenityNotFound if the amenity does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Amenity, error)

	// GetByName retrieves an amenity by its exact name.
	// Returns ErrAmenityNotFound if no amenity matches.
	GetByName(ctx context.Context, name string) (*domain.Amenity, error)

	// List returns all stored amenities.
	List(ctx context.Context) ([]*domain.Amenity, error)

	// Update replaces an existing amenity's mutable fields.
	// Returns ErrAmenityNotFound if the amenity does not exist.
	Update(ctx context.Context, amenity *domain.Amenity) error

	// Delete removes an amenity by its ID.
	// Returns ErrAmenityNotFound if the amenity does not exist.
	// Callers are expected to unlink the amenity from places first; see
	// PlaceStore.RemoveAmenity.
	Delete(ctx context.Context, id uuid.UUID) error
}
