package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for City.
var (
	ErrEmptyCityID   = fmt.Errorf("%w: city ID cannot be empty", ErrValidation)
	ErrEmptyCityName = fmt.Errorf("%w: city name cannot be empty", ErrValidation)
	ErrCityNameTooLong = fmt.Errorf(
		"%w: city name must not exceed %d characters", ErrValidation, maxLocalityNameLen)
	ErrEmptyCityStateID = fmt.Errorf("%w: state_id cannot be empty", ErrValidation)
)

// City represents a city within a state. Places may be located in a
// city.
type City struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	StateID   uuid.UUID `json:"state_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCity creates a new City belonging to stateID.
// Whether the state exists is the facade's concern.
func NewCity(name string, stateID uuid.UUID) (*City, error) {
	now := time.Now().UTC()
	city := &City{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(name),
		StateID:   stateID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := city.Validate(); err != nil {
		return nil, err
	}

	return city, nil
}

// Validate checks if the City has valid data.
func (c *City) Validate() error {
	if c.ID == uuid.Nil {
		return ErrEmptyCityID
	}

	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyCityName
	}
	if len(c.Name) > maxLocalityNameLen {
		return ErrCityNameTooLong
	}

	if c.StateID == uuid.Nil {
		return ErrEmptyCityStateID
	}

	return nil
}

// CityPatch describes a partial update to a City. The state is
// immutable; moving a city between states is not an update.
type CityPatch struct {
	Name *string
}

// WithPatch returns a validated copy of the city with the patch applied
// and UpdatedAt refreshed.
func (c *City) WithPatch(patch CityPatch) (*City, error) {
	candidate := *c
	if patch.Name != nil {
		candidate.Name = strings.TrimSpace(*patch.Name)
	}
	candidate.UpdatedAt = time.Now().UTC()

	if err := candidate.Validate(); err != nil {
		return nil, err
	}

	return &candidate, nil
}
