package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewPlace(t *testing.T) {
	ownerID := uuid.New()
	cityID := uuid.New()
	amenities := []uuid.UUID{uuid.New(), uuid.New()}

	place, err := NewPlace("Cozy Cabin", "A cabin in the woods", 120, 45.5, -122.6,
		ownerID, cityID, amenities)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if place.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}
	if place.OwnerID != ownerID || place.CityID != cityID {
		t.Error("Expected owner and city IDs to be set")
	}
	if len(place.AmenityIDs) != 2 {
		t.Errorf("Expected 2 amenity IDs, got %d", len(place.AmenityIDs))
	}
}

func TestNewPlaceWithoutCity(t *testing.T) {
	place, err := NewPlace("Loft", "", 80, 0, 0, uuid.New(), uuid.Nil, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if place.CityID != uuid.Nil {
		t.Error("Expected no city")
	}
	if place.AmenityIDs == nil {
		t.Error("Expected empty amenity slice, got nil")
	}
}

func TestNewPlaceValidation(t *testing.T) {
	ownerID := uuid.New()
	dup := uuid.New()

	tests := []struct {
		name      string
		title     string
		price     float64
		latitude  float64
		longitude float64
		ownerID   uuid.UUID
		amenities []uuid.UUID
		wantErr   error
	}{
		{"empty title", "", 10, 0, 0, ownerID, nil, ErrEmptyTitle},
		{"title too long", strings.Repeat("a", 129), 10, 0, 0, ownerID, nil, ErrTitleTooLong},
		{"negative price", "Loft", -1, 0, 0, ownerID, nil, ErrNegativePrice},
		{"latitude too low", "Loft", 10, -90.5, 0, ownerID, nil, ErrLatitudeRange},
		{"latitude too high", "Loft", 10, 90.5, 0, ownerID, nil, ErrLatitudeRange},
		{"longitude too low", "Loft", 10, 0, -180.5, ownerID, nil, ErrLongitudeRange},
		{"longitude too high", "Loft", 10, 0, 180.5, ownerID, nil, ErrLongitudeRange},
		{"missing owner", "Loft", 10, 0, 0, uuid.Nil, nil, ErrEmptyOwnerID},
		{"duplicate amenities", "Loft", 10, 0, 0, ownerID, []uuid.UUID{dup, dup}, ErrDuplicateAmenity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPlace(tt.title, "", tt.price, tt.latitude, tt.longitude,
				tt.ownerID, uuid.Nil, tt.amenities)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestNewPlaceBoundaryCoordinates(t *testing.T) {
	for _, coords := range [][2]float64{{-90, -180}, {90, 180}, {0, 0}} {
		_, err := NewPlace("Edge", "", 0, coords[0], coords[1], uuid.New(), uuid.Nil, nil)
		if err != nil {
			t.Errorf("Expected coordinates (%v, %v) to be valid, got %v", coords[0], coords[1], err)
		}
	}
}

func TestPlaceWithPatch(t *testing.T) {
	place, err := NewPlace("Loft", "Old description", 80, 10, 20, uuid.New(), uuid.Nil, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	newPrice := 95.0
	newTitle := "Updated Loft"
	updated, err := place.WithPatch(PlacePatch{Title: &newTitle, Price: &newPrice})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if updated.Title != "Updated Loft" || updated.Price != 95.0 {
		t.Errorf("Expected patched fields, got %q %v", updated.Title, updated.Price)
	}
	if updated.Description != "Old description" {
		t.Error("Expected description to be unchanged")
	}
	if place.Title != "Loft" || place.Price != 80 {
		t.Error("Expected receiver to be untouched")
	}
}

func TestPlaceWithPatchInvalidLeavesReceiver(t *testing.T) {
	place, err := NewPlace("Loft", "", 80, 10, 20, uuid.New(), uuid.Nil, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	badPrice := -5.0
	_, err = place.WithPatch(PlacePatch{Price: &badPrice})
	if !errors.Is(err, ErrNegativePrice) {
		t.Errorf("Expected ErrNegativePrice, got %v", err)
	}
	if place.Price != 80 {
		t.Errorf("Expected receiver price unchanged, got %v", place.Price)
	}
}

func TestPlaceWithPatchAmenityAliasing(t *testing.T) {
	ids := []uuid.UUID{uuid.New()}
	place, err := NewPlace("Loft", "", 80, 10, 20, uuid.New(), uuid.Nil, ids)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	newIDs := []uuid.UUID{uuid.New(), uuid.New()}
	updated, err := place.WithPatch(PlacePatch{AmenityIDs: &newIDs})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Mutating the caller's slice must not affect the patched entity.
	newIDs[0] = uuid.Nil
	if updated.AmenityIDs[0] == uuid.Nil {
		t.Error("Expected patched amenity IDs to be an independent copy")
	}
	if len(place.AmenityIDs) != 1 {
		t.Errorf("Expected receiver amenity IDs unchanged, got %d", len(place.AmenityIDs))
	}
}
