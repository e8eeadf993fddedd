package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/hbnb-crew/hbnb-api/internal/domain"
)

// ReviewStore defines the interface for review data persistence.
type ReviewStore interface {
	// Create saves a new review. Returns ErrDuplicate on ID collision
	// or when the user already reviewed the place.
	Create(ctx context.Context, review *domain.Review) error

	// GetByID retrieves a review by its unique ID.
	// Returns ErrReviewNotFound if the review does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Review, error)

	// List returns all stored reviews.
	List(ctx context.Context) ([]*domain.Review, error)

	// ListByPlace returns all reviews of the given place.
	ListByPlace(ctx context.Context, placeID uuid.UUID) ([]*domain.Review, error)

	// ListByUser returns all reviews written by the given user.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Review, error)

	// Update replaces an existing review's mutable fields.
	// Returns ErrReviewNotFound if the review does not exist.
	Update(ctx context.Context, review *domain.Review) error

	// Delete removes a review by its ID.
	// Returns ErrReviewNotFound if the review does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
