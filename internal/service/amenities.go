package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hbnb-crew/hbnb-api/internal/domain"
)

// CreateAmenity creates and persists a new amenity.
func (f *Facade) CreateAmenity(ctx context.Context, name string) (*domain.Amenity, error) {
	amenity, err := domain.NewAmenity(name)
	if err != nil {
		return nil, err
	}

	if err := f.amenities.Create(ctx, amenity); err != nil {
		return nil, err
	}

	f.logger.Info("amenity created",
		slog.String("amenity_id", amenity.ID.String()),
		slog.String("name", amenity.Name))
	return amenity, nil
}

// GetAmenity retrieves an amenity by ID.
func (f *Facade) GetAmenity(ctx context.Context, id uuid.UUID) (*domain.Amenity, error) {
	return f.amenities.GetByID(ctx, id)
}

// GetAmenityByName retrieves an amenity by name, case-insensitively.
func (f *Facade) GetAmenityByName(ctx context.Context, name string) (*domain.Amenity, error) {
	return f.amenities.GetByName(ctx, name)
}

// ListAmenities returns all amenities.
func (f *Facade) ListAmenities(ctx context.Context) ([]*domain.Amenity, error) {
	return f.amenities.List(ctx)
}

// UpdateAmenity applies a partial update to an amenity.
func (f *Facade) UpdateAmenity(ctx context.Context, id uuid.UUID, patch domain.AmenityPatch) (*domain.Amenity, error) {
	amenity, err := f.amenities.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := amenity.WithPatch(patch)
	if err != nil {
		return nil, err
	}

	if err := f.amenities.Update(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteAmenity removes an amenity and unlinks it from every place
// that offered it. The places themselves are untouched.
func (f *Facade) DeleteAmenity(ctx context.Context, id uuid.UUID) error {
	if _, err := f.amenities.GetByID(ctx, id); err != nil {
		return err
	}

	if err := f.places.RemoveAmenity(ctx, id); err != nil {
		return fmt.Errorf("failed to unlink amenity from places: %w", err)
	}

	if err := f.amenities.Delete(ctx, id); err != nil {
		return err
	}

	f.logger.Info("amenity deleted", slog.String("amenity_id", id.String()))
	return nil
}
