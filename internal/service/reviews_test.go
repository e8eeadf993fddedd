package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hbnb-crew/hbnb-api/internal/domain"
	"github.com/hbnb-crew/hbnb-api/internal/store"
)

func TestCreateReview(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newTestFacade(t)
	owner := registerUser(t, f, "owner@example.com")
	guest := registerUser(t, f, "guest@example.com")
	place := createPlace(t, f, owner.ID)

	review, err := f.CreateReview(ctx, CreateReviewInput{
		Text: "Great stay", Rating: 5, UserID: guest.ID, PlaceID: place.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, guest.ID, review.UserID)
	assert.Equal(t, place.ID, review.PlaceID)

	got, err := f.GetReview(ctx, review.ID)
	require.NoError(t, err)
	assert.Equal(t, "Great stay", got.Text)
}

func TestCreateReviewSelfReview(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newTestFacade(t)
	owner := registerUser(t, f, "owner@example.com")
	place := createPlace(t, f, owner.ID)

	_, err := f.CreateReview(ctx, CreateReviewInput{
		Text: "My place is great", Rating: 5, UserID: owner.ID, PlaceID: place.ID,
	})
	assert.ErrorIs(t, err, ErrSelfReview)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCreateReviewDuplicate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newTestFacade(t)
	owner := registerUser(t, f, "owner@example.com")
	guest := registerUser(t, f, "guest@example.com")
	place := createPlace(t, f, owner.ID)

	_, err := f.CreateReview(ctx, CreateReviewInput{
		Text: "Great", Rating: 5, UserID: guest.ID, PlaceID: place.ID,
	})
	require.NoError(t, err)

	_, err = f.CreateReview(ctx, CreateReviewInput{
		Text: "Changed my mind", Rating: 1, UserID: guest.ID, PlaceID: place.ID,
	})
	assert.ErrorIs(t, err, store.ErrDuplicate)
}

func TestCreateReviewUnknownReferences(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newTestFacade(t)
	owner := registerUser(t, f, "owner@example.com")
	place := createPlace(t, f, owner.ID)

	_, err := f.CreateReview(ctx, CreateReviewInput{
		Text: "Great", Rating: 5, UserID: uuid.New(), PlaceID: place.ID,
	})
	assert.ErrorIs(t, err, store.ErrUserNotFound)

	guest := registerUser(t, f, "guest@example.com")
	_, err = f.CreateReview(ctx, CreateReviewInput{
		Text: "Great", Rating: 5, UserID: guest.ID, PlaceID: uuid.New(),
	})
	assert.ErrorIs(t, err, store.ErrPlaceNotFound)
}

func TestListReviewsByPlace(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newTestFacade(t)
	owner := registerUser(t, f, "owner@example.com")
	guest := registerUser(t, f, "guest@example.com")
	place := createPlace(t, f, owner.ID)
	otherPlace := createPlace(t, f, guest.ID)

	review, err := f.CreateReview(ctx, CreateReviewInput{
		Text: "Great", Rating: 5, UserID: guest.ID, PlaceID: place.ID,
	})
	require.NoError(t, err)
	_, err = f.CreateReview(ctx, CreateReviewInput{
		Text: "Fine", Rating: 3, UserID: owner.ID, PlaceID: otherPlace.ID,
	})
	require.NoError(t, err)

	reviews, err := f.ListReviewsByPlace(ctx, place.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, review.ID, reviews[0].ID)

	_, err = f.ListReviewsByPlace(ctx, uuid.New())
	assert.ErrorIs(t, err, store.ErrPlaceNotFound)

	byUser, err := f.ListReviewsByUser(ctx, guest.ID)
	require.NoError(t, err)
	require.Len(t, byUser, 1)
	assert.Equal(t, review.ID, byUser[0].ID)
}

func TestUpdateReview(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newTestFacade(t)
	owner := registerUser(t, f, "owner@example.com")
	guest := registerUser(t, f, "guest@example.com")
	place := createPlace(t, f, owner.ID)

	review, err := f.CreateReview(ctx, CreateReviewInput{
		Text: "Great", Rating: 5, UserID: guest.ID, PlaceID: place.ID,
	})
	require.NoError(t, err)

	newRating := 2
	updated, err := f.UpdateReview(ctx, review.ID, domain.ReviewPatch{Rating: &newRating})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Rating)
	assert.Equal(t, guest.ID, updated.UserID)

	badRating := 9
	_, err = f.UpdateReview(ctx, review.ID, domain.ReviewPatch{Rating: &badRating})
	assert.ErrorIs(t, err, domain.ErrRatingRange)

	got, err := f.GetReview(ctx, review.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Rating)
}

func TestDeleteReview(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newTestFacade(t)
	owner := registerUser(t, f, "owner@example.com")
	guest := registerUser(t, f, "guest@example.com")
	place := createPlace(t, f, owner.ID)

	review, err := f.CreateReview(ctx, CreateReviewInput{
		Text: "Great", Rating: 5, UserID: guest.ID, PlaceID: place.ID,
	})
	require.NoError(t, err)

	require.NoError(t, f.DeleteReview(ctx, review.ID))
	assert.ErrorIs(t, f.DeleteReview(ctx, review.ID), store.ErrReviewNotFound)

	// The guest can review the place again after deleting.
	_, err = f.CreateReview(ctx, CreateReviewInput{
		Text: "Back again", Rating: 4, UserID: guest.ID, PlaceID: place.ID,
	})
	assert.NoError(t, err)
}
