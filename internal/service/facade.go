package service

import (
	"fmt"
	"log/slog"

	"github.com/hbnb-crew/hbnb-api/internal/service/auth"
	"github.com/hbnb-crew/hbnb-api/internal/store"
)

// Facade is the single entry point for application operations. It owns
// entity construction, referential integrity checks between entities,
// and cascade deletes; the stores underneath only persist.
//
// A Facade is constructed explicitly with its dependencies. There is no
// package-level instance; callers that need one create one and pass it
// around.
type Facade struct {
	users     store.UserStore
	places    store.PlaceStore
	reviews   store.ReviewStore
	amenities store.AmenityStore
	states    store.StateStore
	cities    store.CityStore

	hasher auth.PasswordHasher
	logger *slog.Logger
}

// FacadeDeps collects the dependencies of a Facade. All store fields
// and the hasher are required; Logger may be nil.
type FacadeDeps struct {
	Users     store.UserStore
	Places    store.PlaceStore
	Reviews   store.ReviewStore
	Amenities store.AmenityStore
	States    store.StateStore
	Cities    store.CityStore
	Hasher    auth.PasswordHasher
	Logger    *slog.Logger
}

// NewFacade creates a new Facade, validating that every required
// dependency is present.
func NewFacade(deps FacadeDeps) (*Facade, error) {
	switch {
	case deps.Users == nil:
		return nil, fmt.Errorf("user store is required")
	case deps.Places == nil:
		return nil, fmt.Errorf("place store is required")
	case deps.Reviews == nil:
		return nil, fmt.Errorf("review store is required")
	case deps.Amenities == nil:
		return nil, fmt.Errorf("amenity store is required")
	case deps.States == nil:
		return nil, fmt.Errorf("state store is required")
	case deps.Cities == nil:
		return nil, fmt.Errorf("city store is required")
	case deps.Hasher == nil:
		return nil, fmt.Errorf("password hasher is required")
	}

	log := deps.Logger
	if log == nil {
		log = slog.Default()
	}

	return &Facade{
		users:     deps.Users,
		places:    deps.Places,
		reviews:   deps.Reviews,
		amenities: deps.Amenities,
		states:    deps.States,
		cities:    deps.Cities,
		hasher:    deps.Hasher,
		logger:    log.With(slog.String("component", "facade")),
	}, nil
}
