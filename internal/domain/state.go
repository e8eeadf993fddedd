package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// maxLocalityNameLen bounds state and city names.
const maxLocalityNameLen = 128

// Common validation errors for State.
var (
	ErrEmptyStateID   = fmt.Errorf("%w: state ID cannot be empty", ErrValidation)
	ErrEmptyStateName = fmt.Errorf("%w: state name cannot be empty", ErrValidation)
	ErrStateNameTooLong = fmt.Errorf(
		"%w: state name must not exceed %d characters", ErrValidation, maxLocalityNameLen)
)

// State represents a top-level administrative region. Cities belong to
// exactly one state.
type State struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewState creates a new State with the given name.
func NewState(name string) (*State, error) {
	now := time.Now().UTC()
	state := &State{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(name),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := state.Validate(); err != nil {
		return nil, err
	}

	return state, nil
}

// Validate checks if the State has valid data.
func (s *State) Validate() error {
	if s.ID == uuid.Nil {
		return ErrEmptyStateID
	}

	if strings.TrimSpace(s.Name) == "" {
		return ErrEmptyStateName
	}
	if len(s.Name) > maxLocalityNameLen {
		return ErrStateNameTooLong
	}

	return nil
}

// StatePatch describes a partial update to a State.
type StatePatch struct {
	Name *string
}

// WithPatch returns a validated copy of the state with the patch
// applied and UpdatedAt refreshed.
func (s *State) WithPatch(patch StatePatch) (*State, error) {
	candidate := *s
	if patch.Name != nil {
		candidate.Name = strings.TrimSpace(*patch.Name)
	}
	candidate.UpdatedAt = time.Now().UTC()

	if err := candidate.Validate(); err != nil {
		return nil, err
	}

	return &candidate, nil
}
