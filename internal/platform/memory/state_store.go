package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/hbnb-crew/hbnb-api/internal/domain"
	"github.com/hbnb-crew/hbnb-api/internal/store"
)

// StateStore implements store.StateStore with an in-memory map.
type StateStore struct {
	mu     sync.RWMutex
	states map[uuid.UUID]*domain.State
	order  []uuid.UUID
}

// NewStateStore creates an empty in-memory state store.
func NewStateStore() *StateStore {
	return &StateStore{
		states: make(map[uuid.UUID]*domain.State),
	}
}

// Ensure StateStore implements store.StateStore interface
var _ store.StateStore = (*StateStore)(nil)

// Create implements store.StateStore.Create.
func (s *StateStore) Create(ctx context.Context, state *domain.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.states[state.ID]; exists {
		return store.ErrDuplicate
	}

	s.states[state.ID] = cloneState(state)
	s.order = append(s.order, state.ID)
	return nil
}

// GetByID implements store.StateStore.GetByID.
func (s *StateStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.states[id]
	if !ok {
		return nil, store.ErrStateNotFound
	}
	return cloneState(state), nil
}

// List implements store.StateStore.List, returning states in insertion
// order.
func (s *StateStore) List(ctx context.Context) ([]*domain.State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	states := make([]*domain.State, 0, len(s.order))
	for _, id := range s.order {
		states = append(states, cloneState(s.states[id]))
	}
	return states, nil
}

// Update implements store.StateStore.Update.
func (s *StateStore) Update(ctx context.Context, state *domain.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.states[state.ID]; !ok {
		return store.ErrStateNotFound
	}

	s.states[state.ID] = cloneState(state)
	return nil
}

// Delete implements store.StateStore.Delete.
func (s *StateStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.states[id]; !ok {
		return store.ErrStateNotFound
	}
	delete(s.states, id)
	s.order = removeID(s.order, id)
	return nil
}

func cloneState(st *domain.State) *domain.State {
	c := *st
	return &c
}
