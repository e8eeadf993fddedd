package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/hbnb-crew/hbnb-api/internal/domain"
	"github.com/hbnb-crew/hbnb-api/internal/store"
)

// CityStore implements store.CityStore with an in-memory map.
type CityStore struct {
	mu     sync.RWMutex
	cities map[uuid.UUID]*domain.City
	order  []uuid.UUID
}

// NewCityStore creates an empty in-memory city store.
func NewCityStore() *CityStore {
	return &CityStore{
		cities: make(map[uuid.UUID]*domain.City),
	}
}

// Ensure CityStore implements store.CityStore interface
var _ store.CityStore = (*CityStore)(nil)

// Create implements store.CityStore.Create.
func (s *CityStore) Create(ctx context.Context, city *domain.City) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.cities[city.ID]; exists {
		return store.ErrDuplicate
	}

	s.cities[city.ID] = cloneCity(city)
	s.order = append(s.order, city.ID)
	return nil
}

// GetByID implements store.CityStore.GetByID.
func (s *CityStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.City, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	city, ok := s.cities[id]
	if !ok {
		return nil, store.ErrCityNotFound
	}
	return cloneCity(city), nil
}

// List implements store.CityStore.List, returning cities in insertion
// order.
func (s *CityStore) List(ctx context.Context) ([]*domain.City, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cities := make([]*domain.City, 0, len(s.order))
	for _, id := range s.order {
		cities = append(cities, cloneCity(s.cities[id]))
	}
	return cities, nil
}

// ListByState implements store.CityStore.ListByState.
func (s *CityStore) ListByState(ctx context.Context, stateID uuid.UUID) ([]*domain.City, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var cities []*domain.City
	for _, id := range s.order {
		if s.cities[id].StateID == stateID {
			cities = append(cities, cloneCity(s.cities[id]))
		}
	}
	return cities, nil
}

// Update implements store.CityStore.Update.
func (s *CityStore) Update(ctx context.Context, city *domain.City) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cities[city.ID]; !ok {
		return store.ErrCityNotFound
	}

	s.cities[city.ID] = cloneCity(city)
	return nil
}

// Delete implements store.CityStore.Delete.
func (s *CityStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cities[id]; !ok {
		return store.ErrCityNotFound
	}
	delete(s.cities, id)
	s.order = removeID(s.order, id)
	return nil
}

func cloneCity(c *domain.City) *domain.City {
	clone := *c
	return &clone
}
