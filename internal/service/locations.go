package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hbnb-crew/hbnb-api/internal/domain"
)

// CreateState creates and persists a new state.
func (f *Facade) CreateState(ctx context.Context, name string) (*domain.State, error) {
	state, err := domain.NewState(name)
	if err != nil {
		return nil, err
	}

	if err := f.states.Create(ctx, state); err != nil {
		return nil, err
	}

	f.logger.Info("state created",
		slog.String("state_id", state.ID.String()),
		slog.String("name", state.Name))
	return state, nil
}

// GetState retrieves a state by ID.
func (f *Facade) GetState(ctx context.Context, id uuid.UUID) (*domain.State, error) {
	return f.states.GetByID(ctx, id)
}

// ListStates returns all states.
func (f *Facade) ListStates(ctx context.Context) ([]*domain.State, error) {
	return f.states.List(ctx)
}

// UpdateState applies a partial update to a state.
func (f *Facade) UpdateState(ctx context.Context, id uuid.UUID, patch domain.StatePatch) (*domain.State, error) {
	state, err := f.states.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := state.WithPatch(patch)
	if err != nil {
		return nil, err
	}

	if err := f.states.Update(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteState removes a state, its cities, the places in those cities,
// and the reviews of those places.
func (f *Facade) DeleteState(ctx context.Context, id uuid.UUID) error {
	if _, err := f.states.GetByID(ctx, id); err != nil {
		return err
	}

	cities, err := f.cities.ListByState(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to list state's cities: %w", err)
	}
	for _, city := range cities {
		if err := f.deleteCityCascade(ctx, city.ID); err != nil {
			return err
		}
	}

	if err := f.states.Delete(ctx, id); err != nil {
		return err
	}

	f.logger.Info("state deleted",
		slog.String("state_id", id.String()),
		slog.Int("cascaded_cities", len(cities)))
	return nil
}

// CreateCity creates and persists a new city after verifying its state
// exists.
func (f *Facade) CreateCity(ctx context.Context, name string, stateID uuid.UUID) (*domain.City, error) {
	city, err := domain.NewCity(name, stateID)
	if err != nil {
		return nil, err
	}

	if _, err := f.states.GetByID(ctx, city.StateID); err != nil {
		return nil, fmt.Errorf("state: %w", err)
	}

	if err := f.cities.Create(ctx, city); err != nil {
		return nil, err
	}

	f.logger.Info("city created",
		slog.String("city_id", city.ID.String()),
		slog.String("state_id", city.StateID.String()))
	return city, nil
}

// GetCity retrieves a city by ID.
func (f *Facade) GetCity(ctx context.Context, id uuid.UUID) (*domain.City, error) {
	return f.cities.GetByID(ctx, id)
}

// ListCities returns all cities.
func (f *Facade) ListCities(ctx context.Context) ([]*domain.City, error) {
	return f.cities.List(ctx)
}

// ListCitiesByState returns the cities of the given state.
// Returns store.ErrStateNotFound if the state does not exist.
func (f *Facade) ListCitiesByState(ctx context.Context, stateID uuid.UUID) ([]*domain.City, error) {
	if _, err := f.states.GetByID(ctx, stateID); err != nil {
		return nil, err
	}
	return f.cities.ListByState(ctx, stateID)
}

// UpdateCity applies a partial update to a city. The state is
// immutable; only the name can change.
func (f *Facade) UpdateCity(ctx context.Context, id uuid.UUID, patch domain.CityPatch) (*domain.City, error) {
	city, err := f.cities.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := city.WithPatch(patch)
	if err != nil {
		return nil, err
	}

	if err := f.cities.Update(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteCity removes a city, the places located in it, and the reviews
// of those places.
func (f *Facade) DeleteCity(ctx context.Context, id uuid.UUID) error {
	if _, err := f.cities.GetByID(ctx, id); err != nil {
		return err
	}
	return f.deleteCityCascade(ctx, id)
}

// deleteCityCascade removes a city's places and then the city itself.
func (f *Facade) deleteCityCascade(ctx context.Context, id uuid.UUID) error {
	places, err := f.places.ListByCity(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to list city's places: %w", err)
	}
	for _, place := range places {
		if err := f.deletePlaceCascade(ctx, place.ID); err != nil {
			return err
		}
	}

	if err := f.cities.Delete(ctx, id); err != nil {
		return err
	}

	f.logger.Info("city deleted",
		slog.String("city_id", id.String()),
		slog.Int("cascaded_places", len(places)))
	return nil
}
