package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hbnb-crew/hbnb-api/internal/domain"
	"github.com/hbnb-crew/hbnb-api/internal/store"
)

// CreateReviewInput carries the fields needed to review a place.
type CreateReviewInput struct {
	Text    string
	Rating  int
	UserID  uuid.UUID
	PlaceID uuid.UUID
}

// CreateReview creates and persists a new review after verifying that
// the author and the place exist and that the author does not own the
// place. The store enforces one review per user per place atomically
// with the insert and returns store.ErrDuplicate on a repeat.
func (f *Facade) CreateReview(ctx context.Context, input CreateReviewInput) (*domain.Review, error) {
	review, err := domain.NewReview(input.Text, input.Rating, input.UserID, input.PlaceID)
	if err != nil {
		return nil, err
	}

	if _, err := f.users.GetByID(ctx, review.UserID); err != nil {
		return nil, fmt.Errorf("author: %w", err)
	}
	place, err := f.places.GetByID(ctx, review.PlaceID)
	if err != nil {
		return nil, fmt.Errorf("place: %w", err)
	}
	if place.OwnerID == review.UserID {
		return nil, ErrSelfReview
	}

	if err := f.reviews.Create(ctx, review); err != nil {
		return nil, err
	}

	f.logger.Info("review created",
		slog.String("review_id", review.ID.String()),
		slog.String("place_id", review.PlaceID.String()),
		slog.String("user_id", review.UserID.String()))
	return review, nil
}

// GetReview retrieves a review by ID.
func (f *Facade) GetReview(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	return f.reviews.GetByID(ctx, id)
}

// ListReviews returns all reviews.
func (f *Facade) ListReviews(ctx context.Context) ([]*domain.Review, error) {
	return f.reviews.List(ctx)
}

// ListReviewsByPlace returns the reviews of the given place.
// Returns store.ErrPlaceNotFound if the place does not exist.
func (f *Facade) ListReviewsByPlace(ctx context.Context, placeID uuid.UUID) ([]*domain.Review, error) {
	if _, err := f.places.GetByID(ctx, placeID); err != nil {
		return nil, err
	}
	return f.reviews.ListByPlace(ctx, placeID)
}

// ListReviewsByUser returns the reviews written by the given user.
// Returns store.ErrUserNotFound if the user does not exist.
func (f *Facade) ListReviewsByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Review, error) {
	if _, err := f.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return f.reviews.ListByUser(ctx, userID)
}

// UpdateReview applies a partial update to a review. The author and the
// reviewed place are immutable; only text and rating can change.
func (f *Facade) UpdateReview(ctx context.Context, id uuid.UUID, patch domain.ReviewPatch) (*domain.Review, error) {
	review, err := f.reviews.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := review.WithPatch(patch)
	if err != nil {
		return nil, err
	}

	if err := f.reviews.Update(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteReview removes a review by ID.
func (f *Facade) DeleteReview(ctx context.Context, id uuid.UUID) error {
	return f.reviews.Delete(ctx, id)
}

// deleteReviewIgnoringMissing deletes a review during a cascade,
// treating an already-gone review as success.
func (f *Facade) deleteReviewIgnoringMissing(ctx context.Context, id uuid.UUID) error {
	if err := f.reviews.Delete(ctx, id); err != nil && !errors.Is(err, store.ErrReviewNotFound) {
		return err
	}
	return nil
}
