package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Review.
var (
	ErrEmptyReviewID     = fmt.Errorf("%w: review ID cannot be empty", ErrValidation)
	ErrEmptyReviewText   = fmt.Errorf("%w: text cannot be empty", ErrValidation)
	ErrRatingRange       = fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	ErrEmptyReviewUserID = fmt.Errorf("%w: user_id cannot be empty", ErrValidation)
	ErrEmptyReviewPlace  = fmt.Errorf("%w: place_id cannot be empty", ErrValidation)
)

// Review represents a user's rating of a place.
type Review struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	Rating    int       `json:"rating"`
	UserID    uuid.UUID `json:"user_id"`
	PlaceID   uuid.UUID `json:"place_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewReview creates a new Review written by userID about placeID.
// Returns an error if validation fails. Whether the user and place
// exist, and whether the user is allowed to review the place, is the
// facade's concern.
func NewReview(text string, rating int, userID, placeID uuid.UUID) (*Review, error) {
	now := time.Now().UTC()
	review := &Review{
		ID:        uuid.New(),
		Text:      strings.TrimSpace(text),
		Rating:    rating,
		UserID:    userID,
		PlaceID:   placeID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := review.Validate(); err != nil {
		return nil, err
	}

	return review, nil
}

// Validate checks if the Review has valid data.
func (r *Review) Validate() error {
	if r.ID == uuid.Nil {
		return ErrEmptyReviewID
	}

	if strings.TrimSpace(r.Text) == "" {
		return ErrEmptyReviewText
	}

	if r.Rating < 1 || r.Rating > 5 {
		return ErrRatingRange
	}

	if r.UserID == uuid.Nil {
		return ErrEmptyReviewUserID
	}
	if r.PlaceID == uuid.Nil {
		return ErrEmptyReviewPlace
	}

	return nil
}

// ReviewPatch describes a partial update to a Review. The author and
// the reviewed place are immutable.
type ReviewPatch struct {
	Text   *string
	Rating *int
}

// WithPatch returns a validated copy of the review with the patch
// applied and UpdatedAt refreshed.
func (r *Review) WithPatch(patch ReviewPatch) (*Review, error) {
	candidate := *r
	if patch.Text != nil {
		candidate.Text = strings.TrimSpace(*patch.Text)
	}
	if patch.Rating != nil {
		candidate.Rating = *patch.Rating
	}
	candidate.UpdatedAt = time.Now().UTC()

	if err := candidate.Validate(); err != nil {
		return nil, err
	}

	return &candidate, nil
}
