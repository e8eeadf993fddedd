package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewState(t *testing.T) {
	state, err := NewState("Oregon")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if state.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}
	if state.Name != "Oregon" {
		t.Errorf("Expected name Oregon, got %s", state.Name)
	}
}

func TestNewStateValidation(t *testing.T) {
	if _, err := NewState(""); !errors.Is(err, ErrEmptyStateName) {
		t.Errorf("Expected ErrEmptyStateName, got %v", err)
	}
	if _, err := NewState(strings.Repeat("a", 129)); !errors.Is(err, ErrStateNameTooLong) {
		t.Errorf("Expected ErrStateNameTooLong, got %v", err)
	}
}

func TestNewCity(t *testing.T) {
	stateID := uuid.New()
	city, err := NewCity("Portland", stateID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if city.StateID != stateID {
		t.Error("Expected state ID to be set")
	}
}

func TestNewCityValidation(t *testing.T) {
	stateID := uuid.New()

	if _, err := NewCity("", stateID); !errors.Is(err, ErrEmptyCityName) {
		t.Errorf("Expected ErrEmptyCityName, got %v", err)
	}
	if _, err := NewCity(strings.Repeat("a", 129), stateID); !errors.Is(err, ErrCityNameTooLong) {
		t.Errorf("Expected ErrCityNameTooLong, got %v", err)
	}
	if _, err := NewCity("Portland", uuid.Nil); !errors.Is(err, ErrEmptyCityStateID) {
		t.Errorf("Expected ErrEmptyCityStateID, got %v", err)
	}
}

func TestCityWithPatchKeepsState(t *testing.T) {
	city, err := NewCity("Portland", uuid.New())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	newName := "East Portland"
	updated, err := city.WithPatch(CityPatch{Name: &newName})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if updated.Name != "East Portland" {
		t.Errorf("Expected patched name, got %s", updated.Name)
	}
	if updated.StateID != city.StateID {
		t.Error("Expected state ID to be unchanged by patch")
	}
}
