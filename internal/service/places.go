package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hbnb-crew/hbnb-api/internal/domain"
	"github.com/hbnb-crew/hbnb-api/internal/store"
)

// CreatePlaceInput carries the fields needed to list a place. CityID
// may be uuid.Nil when the place is not attached to a city.
type CreatePlaceInput struct {
	Title       string
	Description string
	Price       float64
	Latitude    float64
	Longitude   float64
	OwnerID     uuid.UUID
	CityID      uuid.UUID
	AmenityIDs  []uuid.UUID
}

// CreatePlace creates and persists a new place after verifying that the
// owner, the city (when set), and every referenced amenity exist.
func (f *Facade) CreatePlace(ctx context.Context, input CreatePlaceInput) (*domain.Place, error) {
	place, err := domain.NewPlace(
		input.Title,
		input.Description,
		input.Price,
		input.Latitude,
		input.Longitude,
		input.OwnerID,
		input.CityID,
		input.AmenityIDs,
	)
	if err != nil {
		return nil, err
	}

	if _, err := f.users.GetByID(ctx, place.OwnerID); err != nil {
		return nil, fmt.Errorf("owner: %w", err)
	}
	if err := f.checkPlaceRefs(ctx, place.CityID, place.AmenityIDs); err != nil {
		return nil, err
	}

	if err := f.places.Create(ctx, place); err != nil {
		return nil, err
	}

	f.logger.Info("place created",
		slog.String("place_id", place.ID.String()),
		slog.String("owner_id", place.OwnerID.String()))
	return place, nil
}

// GetPlace retrieves a place by ID.
func (f *Facade) GetPlace(ctx context.Context, id uuid.UUID) (*domain.Place, error) {
	return f.places.GetByID(ctx, id)
}

// ListPlaces returns all places.
func (f *Facade) ListPlaces(ctx context.Context) ([]*domain.Place, error) {
	return f.places.List(ctx)
}

// ListPlacesByOwner returns all places owned by the given user.
// Returns store.ErrUserNotFound if the user does not exist.
func (f *Facade) ListPlacesByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Place, error) {
	if _, err := f.users.GetByID(ctx, ownerID); err != nil {
		return nil, err
	}
	return f.places.ListByOwner(ctx, ownerID)
}

// ListPlacesByCity returns all places located in the given city.
// Returns store.ErrCityNotFound if the city does not exist.
func (f *Facade) ListPlacesByCity(ctx context.Context, cityID uuid.UUID) ([]*domain.Place, error) {
	if _, err := f.cities.GetByID(ctx, cityID); err != nil {
		return nil, err
	}
	return f.places.ListByCity(ctx, cityID)
}

// UpdatePlace applies a partial update to a place. The owner is
// immutable. When the patch changes the city or the amenity set, the
// new references must exist. The patch is validated against a copy
// before anything is written.
func (f *Facade) UpdatePlace(ctx context.Context, id uuid.UUID, patch domain.PlacePatch) (*domain.Place, error) {
	place, err := f.places.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := place.WithPatch(patch)
	if err != nil {
		return nil, err
	}

	if err := f.checkPlaceRefs(ctx, updated.CityID, updated.AmenityIDs); err != nil {
		return nil, err
	}

	if err := f.places.Update(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// DeletePlace removes a place and its reviews. Amenity links go with
// the place; the amenities themselves survive.
func (f *Facade) DeletePlace(ctx context.Context, id uuid.UUID) error {
	if _, err := f.places.GetByID(ctx, id); err != nil {
		return err
	}
	return f.deletePlaceCascade(ctx, id)
}

// deletePlaceCascade removes a place's reviews and then the place
// itself. A place that vanished mid-cascade is treated as already
// deleted.
func (f *Facade) deletePlaceCascade(ctx context.Context, id uuid.UUID) error {
	reviews, err := f.reviews.ListByPlace(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to list place's reviews: %w", err)
	}
	for _, review := range reviews {
		if err := f.deleteReviewIgnoringMissing(ctx, review.ID); err != nil {
			return err
		}
	}

	if err := f.places.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrPlaceNotFound) {
			return nil
		}
		return err
	}

	f.logger.Info("place deleted",
		slog.String("place_id", id.String()),
		slog.Int("cascaded_reviews", len(reviews)))
	return nil
}

// checkPlaceRefs verifies that a place's city (when set) and amenities
// exist, wrapping the store's not-found errors with the reference that
// failed.
func (f *Facade) checkPlaceRefs(ctx context.Context, cityID uuid.UUID, amenityIDs []uuid.UUID) error {
	if cityID != uuid.Nil {
		if _, err := f.cities.GetByID(ctx, cityID); err != nil {
			return fmt.Errorf("city: %w", err)
		}
	}
	for _, amenityID := range amenityIDs {
		if _, err := f.amenities.GetByID(ctx, amenityID); err != nil {
			return fmt.Errorf("amenity %s: %w", amenityID, err)
		}
	}
	return nil
}
