package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/hbnb-crew/hbnb-api/internal/domain"
	"github.com/hbnb-crew/hbnb-api/internal/store"
)

// ReviewStore implements store.ReviewStore with an in-memory map.
type ReviewStore struct {
	mu      sync.RWMutex
	reviews map[uuid.UUID]*domain.Review
	order   []uuid.UUID
}

// NewReviewStore creates an empty in-memory review store.
func NewReviewStore() *ReviewStore {
	return &ReviewStore{
		reviews: make(map[uuid.UUID]*domain.Review),
	}
}

// Ensure ReviewStore implements store.ReviewStore interface
var _ store.ReviewStore = (*ReviewStore)(nil)

// Create implements store.ReviewStore.Create. A second review by the
// same user for the same place is rejected under the same lock as the
// insert, mirroring the durable store's unique constraint.
func (s *ReviewStore) Create(ctx context.Context, review *domain.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.reviews[review.ID]; exists {
		return store.ErrDuplicate
	}
	for _, existing := range s.reviews {
		if existing.UserID == review.UserID && existing.PlaceID == review.PlaceID {
			return store.ErrDuplicate
		}
	}

	s.reviews[review.ID] = cloneReview(review)
	s.order = append(s.order, review.ID)
	return nil
}

// GetByID implements store.ReviewStore.GetByID.
func (s *ReviewStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	review, ok := s.reviews[id]
	if !ok {
		return nil, store.ErrReviewNotFound
	}
	return cloneReview(review), nil
}

// List implements store.ReviewStore.List, returning reviews in
// insertion order.
func (s *ReviewStore) List(ctx context.Context) ([]*domain.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reviews := make([]*domain.Review, 0, len(s.order))
	for _, id := range s.order {
		reviews = append(reviews, cloneReview(s.reviews[id]))
	}
	return reviews, nil
}

// ListByPlace implements store.ReviewStore.ListByPlace.
func (s *ReviewStore) ListByPlace(ctx context.Context, placeID uuid.UUID) ([]*domain.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var reviews []*domain.Review
	for _, id := range s.order {
		if s.reviews[id].PlaceID == placeID {
			reviews = append(reviews, cloneReview(s.reviews[id]))
		}
	}
	return reviews, nil
}

// ListByUser implements store.ReviewStore.ListByUser.
func (s *ReviewStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var reviews []*domain.Review
	for _, id := range s.order {
		if s.reviews[id].UserID == userID {
			reviews = append(reviews, cloneReview(s.reviews[id]))
		}
	}
	return reviews, nil
}

// Update implements store.ReviewStore.Update.
func (s *ReviewStore) Update(ctx context.Context, review *domain.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.reviews[review.ID]; !ok {
		return store.ErrReviewNotFound
	}

	s.reviews[review.ID] = cloneReview(review)
	return nil
}

// Delete implements store.ReviewStore.Delete.
func (s *ReviewStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.reviews[id]; !ok {
		return store.ErrReviewNotFound
	}
	delete(s.reviews, id)
	s.order = removeID(s.order, id)
	return nil
}

func cloneReview(r *domain.Review) *domain.Review {
	c := *r
	return &c
}
