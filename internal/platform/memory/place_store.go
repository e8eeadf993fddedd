package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/hbnb-crew/hbnb-api/internal/domain"
	"github.com/hbnb-crew/hbnb-api/internal/store"
)

// PlaceStore implements store.PlaceStore with an in-memory map.
// Amenity links live on the place itself, so there is no separate link
// table to maintain.
type PlaceStore struct {
	mu     sync.RWMutex
	places map[uuid.UUID]*domain.Place
	order  []uuid.UUID
}

// NewPlaceStore creates an empty in-memory place store.
func NewPlaceStore() *PlaceStore {
	return &PlaceStore{
		places: make(map[uuid.UUID]*domain.Place),
	}
}

// Ensure PlaceStore implements store.PlaceStore interface
var _ store.PlaceStore = (*PlaceStore)(nil)

// Create implements store.PlaceStore.Create.
func (s *PlaceStore) Create(ctx context.Context, place *domain.Place) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.places[place.ID]; exists {
		return store.ErrDuplicate
	}

	s.places[place.ID] = clonePlace(place)
	s.order = append(s.order, place.ID)
	return nil
}

// GetByID implements store.PlaceStore.GetByID.
func (s *PlaceStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Place, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	place, ok := s.places[id]
	if !ok {
		return nil, store.ErrPlaceNotFound
	}
	return clonePlace(place), nil
}

// List implements store.PlaceStore.List, returning places in insertion
// order.
func (s *PlaceStore) List(ctx context.Context) ([]*domain.Place, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	places := make([]*domain.Place, 0, len(s.order))
	for _, id := range s.order {
		places = append(places, clonePlace(s.places[id]))
	}
	return places, nil
}

// ListByOwner implements store.PlaceStore.ListByOwner.
func (s *PlaceStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Place, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var places []*domain.Place
	for _, id := range s.order {
		if s.places[id].OwnerID == ownerID {
			places = append(places, clonePlace(s.places[id]))
		}
	}
	return places, nil
}

// ListByCity implements store.PlaceStore.ListByCity.
func (s *PlaceStore) ListByCity(ctx context.Context, cityID uuid.UUID) ([]*domain.Place, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var places []*domain.Place
	for _, id := range s.order {
		if s.places[id].CityID == cityID {
			places = append(places, clonePlace(s.places[id]))
		}
	}
	return places, nil
}

// Update implements store.PlaceStore.Update.
func (s *PlaceStore) Update(ctx context.Context, place *domain.Place) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.places[place.ID]; !ok {
		return store.ErrPlaceNotFound
	}

	s.places[place.ID] = clonePlace(place)
	return nil
}

// Delete implements store.PlaceStore.Delete.
func (s *PlaceStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.places[id]; !ok {
		return store.ErrPlaceNotFound
	}
	delete(s.places, id)
	s.order = removeID(s.order, id)
	return nil
}

// RemoveAmenity implements store.PlaceStore.RemoveAmenity. The places
// keep their UpdatedAt; unlinking is bookkeeping, not a content change.
func (s *PlaceStore) RemoveAmenity(ctx context.Context, amenityID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, place := range s.places {
		for i, id := range place.AmenityIDs {
			if id == amenityID {
				place.AmenityIDs = append(place.AmenityIDs[:i], place.AmenityIDs[i+1:]...)
				break
			}
		}
	}
	return nil
}

func clonePlace(p *domain.Place) *domain.Place {
	c := *p
	c.AmenityIDs = make([]uuid.UUID, len(p.AmenityIDs))
	copy(c.AmenityIDs, p.AmenityIDs)
	return &c
}
