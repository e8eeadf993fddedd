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

func TestCreateAmenity(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newTestFacade(t)

	amenity, err := f.CreateAmenity(ctx, "WiFi")
	require.NoError(t, err)
	assert.Equal(t, "WiFi", amenity.Name)

	got, err := f.GetAmenityByName(ctx, "wifi")
	require.NoError(t, err)
	assert.Equal(t, amenity.ID, got.ID)

	_, err = f.CreateAmenity(ctx, "")
	assert.ErrorIs(t, err, domain.ErrEmptyAmenityName)
}

func TestUpdateAmenity(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newTestFacade(t)

	amenity, err := f.CreateAmenity(ctx, "WiFi")
	require.NoError(t, err)

	newName := "Fast WiFi"
	updated, err := f.UpdateAmenity(ctx, amenity.ID, domain.AmenityPatch{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Fast WiFi", updated.Name)

	_, err = f.UpdateAmenity(ctx, uuid.New(), domain.AmenityPatch{Name: &newName})
	assert.ErrorIs(t, err, store.ErrAmenityNotFound)
}

func TestDeleteAmenityUnlinksPlaces(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newTestFacade(t)
	owner := registerUser(t, f, "owner@example.com")

	wifi, err := f.CreateAmenity(ctx, "WiFi")
	require.NoError(t, err)
	pool, err := f.CreateAmenity(ctx, "Pool")
	require.NoError(t, err)

	place, err := f.CreatePlace(ctx, CreatePlaceInput{
		Title: "Cabin", Price: 100, OwnerID: owner.ID,
		AmenityIDs: []uuid.UUID{wifi.ID, pool.ID},
	})
	require.NoError(t, err)

	require.NoError(t, f.DeleteAmenity(ctx, wifi.ID))

	_, err = f.GetAmenity(ctx, wifi.ID)
	assert.ErrorIs(t, err, store.ErrAmenityNotFound)

	// The place survives with the deleted amenity unlinked.
	got, err := f.GetPlace(ctx, place.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{pool.ID}, got.AmenityIDs)

	assert.ErrorIs(t, f.DeleteAmenity(ctx, wifi.ID), store.ErrAmenityNotFound)
}
