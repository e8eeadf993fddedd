package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// maxTitleLen bounds place titles, matching the column width of the
// durable store.
const maxTitleLen = 128

// Common validation errors for Place.
var (
	ErrEmptyPlaceID    = fmt.Errorf("%w: place ID cannot be empty", ErrValidation)
	ErrEmptyTitle      = fmt.Errorf("%w: title cannot be empty", ErrValidation)
	ErrTitleTooLong    = fmt.Errorf("%w: title must not exceed %d characters", ErrValidation, maxTitleLen)
	ErrNegativePrice   = fmt.Errorf("%w: price cannot be negative", ErrValidation)
	ErrLatitudeRange   = fmt.Errorf("%w: latitude must be between -90 and 90", ErrValidation)
	ErrLongitudeRange  = fmt.Errorf("%w: longitude must be between -180 and 180", ErrValidation)
	ErrEmptyOwnerID    = fmt.Errorf("%w: owner_id cannot be empty", ErrValidation)
	ErrDuplicateAmenity = fmt.Errorf(
		"%w: amenity_ids must not contain duplicates", ErrValidation)
)

// Place represents a rental property listed by a user.
// OwnerID references the User who owns the place; CityID is optional
// and, when set, references the City the place is located in.
type Place struct {
	ID          uuid.UUID   `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Price       float64     `json:"price"`
	Latitude    float64     `json:"latitude"`
	Longitude   float64     `json:"longitude"`
	OwnerID     uuid.UUID   `json:"owner_id"`
	CityID      uuid.UUID   `json:"city_id,omitempty"` // uuid.Nil means no city
	AmenityIDs  []uuid.UUID `json:"amenity_ids"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// NewPlace creates a new Place owned by ownerID.
// cityID may be uuid.Nil when the place is not attached to a city.
// Returns an error if validation fails. Referential checks (owner,
// city, amenities actually existing) belong to the facade, not here.
func NewPlace(
	title, description string,
	price, latitude, longitude float64,
	ownerID, cityID uuid.UUID,
	amenityIDs []uuid.UUID,
) (*Place, error) {
	now := time.Now().UTC()
	place := &Place{
		ID:          uuid.New(),
		Title:       strings.TrimSpace(title),
		Description: description,
		Price:       price,
		Latitude:    latitude,
		Longitude:   longitude,
		OwnerID:     ownerID,
		CityID:      cityID,
		AmenityIDs:  copyAmenityIDs(amenityIDs),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := place.Validate(); err != nil {
		return nil, err
	}

	return place, nil
}

// Validate checks if the Place has valid data.
func (p *Place) Validate() error {
	if p.ID == uuid.Nil {
		return ErrEmptyPlaceID
	}

	if strings.TrimSpace(p.Title) == "" {
		return ErrEmptyTitle
	}
	if len(p.Title) > maxTitleLen {
		return ErrTitleTooLong
	}

	if p.Price < 0 {
		return ErrNegativePrice
	}
	if p.Latitude < -90 || p.Latitude > 90 {
		return ErrLatitudeRange
	}
	if p.Longitude < -180 || p.Longitude > 180 {
		return ErrLongitudeRange
	}

	if p.OwnerID == uuid.Nil {
		return ErrEmptyOwnerID
	}

	seen := make(map[uuid.UUID]struct{}, len(p.AmenityIDs))
	for _, id := range p.AmenityIDs {
		if _, dup := seen[id]; dup {
			return ErrDuplicateAmenity
		}
		seen[id] = struct{}{}
	}

	return nil
}

// PlacePatch describes a partial update to a Place. The owner is
// immutable; transferring a place is not an update.
type PlacePatch struct {
	Title       *string
	Description *string
	Price       *float64
	Latitude    *float64
	Longitude   *float64
	CityID      *uuid.UUID
	AmenityIDs  *[]uuid.UUID
}

// WithPatch returns a validated copy of the place with the patch applied
// and UpdatedAt refreshed. The receiver is never modified.
func (p *Place) WithPatch(patch PlacePatch) (*Place, error) {
	candidate := *p
	candidate.AmenityIDs = copyAmenityIDs(p.AmenityIDs)

	if patch.Title != nil {
		candidate.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Description != nil {
		candidate.Description = *patch.Description
	}
	if patch.Price != nil {
		candidate.Price = *patch.Price
	}
	if patch.Latitude != nil {
		candidate.Latitude = *patch.Latitude
	}
	if patch.Longitude != nil {
		candidate.Longitude = *patch.Longitude
	}
	if patch.CityID != nil {
		candidate.CityID = *patch.CityID
	}
	if patch.AmenityIDs != nil {
		candidate.AmenityIDs = copyAmenityIDs(*patch.AmenityIDs)
	}
	candidate.UpdatedAt = time.Now().UTC()

	if err := candidate.Validate(); err != nil {
		return nil, err
	}

	return &candidate, nil
}

// copyAmenityIDs copies the slice so patched entities never alias the
// caller's (or the stored entity's) backing array. Duplicates are kept;
// Validate reports them.
func copyAmenityIDs(ids []uuid.UUID) []uuid.UUID {
	if ids == nil {
		return []uuid.UUID{}
	}
	out := make([]uuid.UUID, len(ids))
	copy(out, ids)
	return out
}
