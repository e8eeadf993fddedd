package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/hbnb-crew/hbnb-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store.
	// Returns ErrDuplicate if a user with the same ID already exists and
	// ErrEmailExists if the email is already registered. The email check
	// and the insert are atomic.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by their email address. The lookup is
	// case-insensitive. Returns ErrUserNotFound if no user matches.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// List returns all stored users. The in-memory implementation
	// returns them in insertion order; the durable implementation
	// orders by creation time.
	List(ctx context.Context) ([]*domain.User, error)

	// Update replaces an existing user's mutable fields.
	// Returns ErrUserNotFound if the user does not exist and
	// ErrEmailExists when changing to an email registered to another user.
	Update(ctx context.Context, user *domain.User) error

	// Delete removes a user from the store by their ID.
	// Returns ErrUserNotFound if the user does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
