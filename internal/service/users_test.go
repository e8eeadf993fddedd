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

func registerUser(t *testing.T, f *Facade, email string) *domain.User {
	t.Helper()
	user, err := f.RegisterUser(context.Background(), CreateUserInput{
		FirstName: "Test",
		LastName:  "User",
		Email:     email,
		Password:  "correct horse",
	})
	require.NoError(t, err)
	return user
}

func TestRegisterUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newTestFacade(t)

	user, err := f.RegisterUser(ctx, CreateUserInput{
		FirstName: "Alice",
		LastName:  "Smith",
		Email:     "alice@example.com",
		Password:  "correct horse",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "hashed:correct horse", user.HashedPassword)

	got, err := f.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", got.Email)
}

func TestRegisterUserShortPassword(t *testing.T) {
	t.Parallel()
	f := newTestFacade(t)

	_, err := f.RegisterUser(context.Background(), CreateUserInput{
		FirstName: "Alice",
		LastName:  "Smith",
		Email:     "alice@example.com",
		Password:  "short",
	})
	assert.ErrorIs(t, err, ErrPasswordTooShort)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRegisterUserDuplicateEmail(t *testing.T) {
	t.Parallel()
	f := newTestFacade(t)

	registerUser(t, f, "alice@example.com")

	_, err := f.RegisterUser(context.Background(), CreateUserInput{
		FirstName: "Other",
		LastName:  "Person",
		Email:     "Alice@Example.com",
		Password:  "correct horse",
	})
	assert.ErrorIs(t, err, store.ErrEmailExists)
}

func TestRegisterUserInvalidEmail(t *testing.T) {
	t.Parallel()
	f := newTestFacade(t)

	_, err := f.RegisterUser(context.Background(), CreateUserInput{
		FirstName: "Alice",
		LastName:  "Smith",
		Email:     "not-an-email",
		Password:  "correct horse",
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUpdateUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newTestFacade(t)
	user := registerUser(t, f, "alice@example.com")

	newName := "Alicia"
	updated, err := f.UpdateUser(ctx, user.ID, domain.UserPatch{FirstName: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Alicia", updated.FirstName)
	assert.Equal(t, user.Email, updated.Email)

	got, err := f.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alicia", got.FirstName)
}

func TestUpdateUserInvalidPatchLeavesStoredUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newTestFacade(t)
	user := registerUser(t, f, "alice@example.com")

	badEmail := "not-an-email"
	_, err := f.UpdateUser(ctx, user.ID, domain.UserPatch{Email: &badEmail})
	assert.ErrorIs(t, err, domain.ErrValidation)

	got, err := f.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", got.Email)
}

func TestUpdateUserNotFound(t *testing.T) {
	t.Parallel()
	f := newTestFacade(t)

	newName := "Ghost"
	_, err := f.UpdateUser(context.Background(), uuid.New(), domain.UserPatch{FirstName: &newName})
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestChangePassword(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newTestFacade(t)
	user := registerUser(t, f, "alice@example.com")

	require.NoError(t, f.ChangePassword(ctx, user.ID, "new password"))

	_, err := f.Authenticate(ctx, "alice@example.com", "correct horse")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	got, err := f.Authenticate(ctx, "alice@example.com", "new password")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	assert.ErrorIs(t, f.ChangePassword(ctx, user.ID, "short"), ErrPasswordTooShort)
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newTestFacade(t)
	user := registerUser(t, f, "alice@example.com")

	got, err := f.Authenticate(ctx, "Alice@EXAMPLE.com", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = f.Authenticate(ctx, "alice@example.com", "wrong password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Unknown emails yield the same error as wrong passwords.
	_, err = f.Authenticate(ctx, "nobody@example.com", "correct horse")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestDeleteUserCascades(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newTestFacade(t)

	owner := registerUser(t, f, "owner@example.com")
	guest := registerUser(t, f, "guest@example.com")

	place, err := f.CreatePlace(ctx, CreatePlaceInput{
		Title: "Cabin", Price: 100, OwnerID: owner.ID,
	})
	require.NoError(t, err)
	otherPlace, err := f.CreatePlace(ctx, CreatePlaceInput{
		Title: "Loft", Price: 80, OwnerID: guest.ID,
	})
	require.NoError(t, err)

	// Guest reviews the owner's place, owner reviews the guest's.
	guestReview, err := f.CreateReview(ctx, CreateReviewInput{
		Text: "Nice", Rating: 5, UserID: guest.ID, PlaceID: place.ID,
	})
	require.NoError(t, err)
	ownerReview, err := f.CreateReview(ctx, CreateReviewInput{
		Text: "Fine", Rating: 3, UserID: owner.ID, PlaceID: otherPlace.ID,
	})
	require.NoError(t, err)

	require.NoError(t, f.DeleteUser(ctx, owner.ID))

	// The owner's place is gone, with the guest's review of it.
	_, err = f.GetPlace(ctx, place.ID)
	assert.ErrorIs(t, err, store.ErrPlaceNotFound)
	_, err = f.GetReview(ctx, guestReview.ID)
	assert.ErrorIs(t, err, store.ErrReviewNotFound)

	// The review the owner wrote elsewhere is gone too.
	_, err = f.GetReview(ctx, ownerReview.ID)
	assert.ErrorIs(t, err, store.ErrReviewNotFound)

	// The guest and their place survive.
	_, err = f.GetUser(ctx, guest.ID)
	assert.NoError(t, err)
	_, err = f.GetPlace(ctx, otherPlace.ID)
	assert.NoError(t, err)

	// Deleting again reports not found.
	assert.ErrorIs(t, f.DeleteUser(ctx, owner.ID), store.ErrUserNotFound)
}
