package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// maxAmenityNameLen bounds amenity names, matching the column width of
// the durable store.
const maxAmenityNameLen = 50

// Common validation errors for Amenity.
var (
	ErrEmptyAmenityID   = fmt.Errorf("%w: amenity ID cannot be empty", ErrValidation)
	ErrEmptyAmenityName = fmt.Errorf("%w: amenity name cannot be empty", ErrValidation)
	ErrAmenityNameTooLong = fmt.Errorf(
		"%w: amenity name must not exceed %d characters", ErrValidation, maxAmenityNameLen)
)

// Amenity represents a feature a place can offer (wifi, pool, parking).
type Amenity struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewAmenity creates a new Amenity with the given name.
// Returns an error if validation fails.
func NewAmenity(name string) (*Amenity, error) {
	now := time.Now().UTC()
	amenity := &Amenity{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(name),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := amenity.Validate(); err != nil {
		return nil, err
	}

	return amenity, nil
}

// Validate checks if the Amenity has valid data.
func (a *Amenity) Validate() error {
	if a.ID == uuid.Nil {
		return ErrEmptyAmenityID
	}

	if strings.TrimSpace(a.Name) == "" {
		return ErrEmptyAmenityName
	}
	if len(a.Name) > maxAmenityNameLen {
		return ErrAmenityNameTooLong
	}

	return nil
}

// AmenityPatch describes a partial update to an Amenity.
type AmenityPatch struct {
	Name *string
}

// WithPatch returns a validated copy of the amenity with the patch
// applied and UpdatedAt refreshed.
func (a *Amenity) WithPatch(patch AmenityPatch) (*Amenity, error) {
	candidate := *a
	if patch.Name != nil {
		candidate.Name = strings.TrimSpace(*patch.Name)
	}
	candidate.UpdatedAt = time.Now().UTC()

	if err := candidate.Validate(); err != nil {
		return nil, err
	}

	return &candidate, nil
}
