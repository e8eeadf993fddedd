package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/hbnb-crew/hbnb-api/internal/domain"
)

// PlaceStore defines the interface for place data persistence,
// including the place-amenity links.
type PlaceStore interface {
	// Create saves a new place together with its amenity links.
	// Returns ErrDuplicate on ID collision. The durable implementation
	// writes the place row and its links atomically.
	Create(ctx context.Context, place *domain.Place) error

	// GetByID retrieves a place (amenity links included) by its ID.
	// Returns ErrPlaceNotFound if the place does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Place, error)

	// List returns all stored places with their amenity links.
	List(ctx context.Context) ([]*domain.Place, error)

	// ListByOwner returns all places owned by the given user.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Place, error)

	// ListByCity returns all places located in the given city.
	ListByCity(ctx context.Context, cityID uuid.UUID) ([]*domain.Place, error)

	// Update replaces an existing place's mutable fields and rewrites
	// its amenity links. Returns ErrPlaceNotFound if the place does not
	// exist.
	Update(ctx context.Context, place *domain.Place) error

	// Delete removes a place and its amenity links by its ID.
	// Returns ErrPlaceNotFound if the place does not exist. Reviews of
	// the place are the facade's responsibility.
	Delete(ctx context.Context, id uuid.UUID) error

	// RemoveAmenity unlinks the given amenity from every place that
	// references it. Places themselves are untouched. Unlinking an
	// amenity no place references is not an error.
	RemoveAmenity(ctx context.Context, amenityID uuid.UUID) error
}
