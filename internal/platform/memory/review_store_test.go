package memory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hbnb-crew/hbnb-api/internal/domain"
	"github.com/hbnb-crew/hbnb-api/internal/store"
)

func newTestReview(t *testing.T, userID, placeID uuid.UUID) *domain.Review {
	t.Helper()
	review, err := domain.NewReview("Great stay", 4, userID, placeID)
	require.NoError(t, err)
	return review
}

func TestReviewStoreCreateAndGet(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewReviewStore()

	review := newTestReview(t, uuid.New(), uuid.New())
	require.NoError(t, s.Create(ctx, review))

	got, err := s.GetByID(ctx, review.ID)
	require.NoError(t, err)
	assert.Equal(t, review.Text, got.Text)
	assert.Equal(t, review.Rating, got.Rating)

	_, err = s.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, store.ErrReviewNotFound)
}

func TestReviewStoreOneReviewPerUserPerPlace(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewReviewStore()

	userID := uuid.New()
	placeID := uuid.New()
	require.NoError(t, s.Create(ctx, newTestReview(t, userID, placeID)))

	// Same user, same place: rejected even with a fresh review ID.
	assert.ErrorIs(t, s.Create(ctx, newTestReview(t, userID, placeID)), store.ErrDuplicate)

	// Same user, different place and different user, same place are fine.
	assert.NoError(t, s.Create(ctx, newTestReview(t, userID, uuid.New())))
	assert.NoError(t, s.Create(ctx, newTestReview(t, uuid.New(), placeID)))
}

func TestReviewStoreListByPlace(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewReviewStore()

	placeID := uuid.New()
	first := newTestReview(t, uuid.New(), placeID)
	other := newTestReview(t, uuid.New(), uuid.New())
	second := newTestReview(t, uuid.New(), placeID)
	for _, r := range []*domain.Review{first, other, second} {
		require.NoError(t, s.Create(ctx, r))
	}

	reviews, err := s.ListByPlace(ctx, placeID)
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, first.ID, reviews[0].ID)
	assert.Equal(t, second.ID, reviews[1].ID)
}

func TestReviewStoreListByUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewReviewStore()

	userID := uuid.New()
	mine := newTestReview(t, userID, uuid.New())
	theirs := newTestReview(t, uuid.New(), uuid.New())
	require.NoError(t, s.Create(ctx, mine))
	require.NoError(t, s.Create(ctx, theirs))

	reviews, err := s.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, mine.ID, reviews[0].ID)
}

func TestReviewStoreUpdate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewReviewStore()

	review := newTestReview(t, uuid.New(), uuid.New())
	require.NoError(t, s.Create(ctx, review))

	review.Rating = 2
	review.Text = "Changed my mind"
	require.NoError(t, s.Update(ctx, review))

	got, err := s.GetByID(ctx, review.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Rating)
	assert.Equal(t, "Changed my mind", got.Text)

	missing := newTestReview(t, uuid.New(), uuid.New())
	assert.ErrorIs(t, s.Update(ctx, missing), store.ErrReviewNotFound)
}

func TestReviewStoreDelete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewReviewStore()

	review := newTestReview(t, uuid.New(), uuid.New())
	require.NoError(t, s.Create(ctx, review))
	require.NoError(t, s.Delete(ctx, review.ID))

	_, err := s.GetByID(ctx, review.ID)
	assert.ErrorIs(t, err, store.ErrReviewNotFound)
	assert.ErrorIs(t, s.Delete(ctx, review.ID), store.ErrReviewNotFound)

	// Deleting frees the user/place slot for a new review.
	assert.NoError(t, s.Create(ctx, newTestReview(t, review.UserID, review.PlaceID)))
}
