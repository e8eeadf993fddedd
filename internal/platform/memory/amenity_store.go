package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/hbnb-crew/hbnb-api/internal/domain"
	"github.com/hbnb-crew/hbnb-api/internal/store"
)

// AmenityStore implements store.AmenityStore with an in-memory map.
type AmenityStore struct {
	mu        sync.RWMutex
	amenities map[uuid.UUID]*domain.Amenity
	order     []uuid.UUID
}

// NewAmenityStore creates an empty in-memory amenity store.
func NewAmenityStore() *AmenityStore {
	return &AmenityStore{
		amenities: make(map[uuid.UUID]*domain.Amenity),
	}
}

// Ensure AmenityStore implements store.AmenityStore interface
var _ store.AmenityStore = (*AmenityStore)(nil)

// Create implements store.AmenityStore.Create.
func (s *AmenityStore) Create(ctx context.Context, amenity *domain.Amenity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.amenities[amenity.ID]; exists {
		return store.ErrDuplicate
	}

	s.amenities[amenity.ID] = cloneAmenity(amenity)
	s.order = append(s.order, amenity.ID)
	return nil
}

// GetByID implements store.AmenityStore.GetByID.
func (s *AmenityStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Amenity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	amenity, ok := s.amenities[id]
	if !ok {
		return nil, store.ErrAmenityNotFound
	}
	return cloneAmenity(amenity), nil
}

// GetByName implements store.AmenityStore.GetByName.
func (s *AmenityStore) GetByName(ctx context.Context, name string) (*domain.Amenity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.order {
		if strings.EqualFold(s.amenities[id].Name, name) {
			return cloneAmenity(s.amenities[id]), nil
		}
	}
	return nil, store.ErrAmenityNotFound
}

// List implements store.AmenityStore.List, returning amenities in
// insertion order.
func (s *AmenityStore) List(ctx context.Context) ([]*domain.Amenity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	amenities := make([]*domain.Amenity, 0, len(s.order))
	for _, id := range s.order {
		amenities = append(amenities, cloneAmenity(s.amenities[id]))
	}
	return amenities, nil
}

// Update implements store.AmenityStore.Update.
func (s *AmenityStore) Update(ctx context.Context, amenity *domain.Amenity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.amenities[amenity.ID]; !ok {
		return store.ErrAmenityNotFound
	}

	s.amenities[amenity.ID] = cloneAmenity(amenity)
	return nil
}

// Delete implements store.AmenityStore.Delete.
func (s *AmenityStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.amenities[id]; !ok {
		return store.ErrAmenityNotFound
	}
	delete(s.amenities, id)
	s.order = removeID(s.order, id)
	return nil
}

func cloneAmenity(a *domain.Amenity) *domain.Amenity {
	c := *a
	return &c
}
