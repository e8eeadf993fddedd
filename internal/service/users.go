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

// CreateUserInput carries the fields needed to register a user. The
// plaintext password never reaches the domain entity; it is hashed here
// and only the hash is stored.
type CreateUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// RegisterUser creates and persists a new user. The store performs the
// email uniqueness check atomically with the insert, so concurrent
// registrations with the same email cannot both succeed.
func (f *Facade) RegisterUser(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	if len(input.Password) < minPasswordLen {
		return nil, ErrPasswordTooShort
	}

	user, err := domain.NewUser(input.FirstName, input.LastName, input.Email)
	if err != nil {
		return nil, err
	}

	hashed, err := f.hasher.Hash(input.Password)
	if err != nil {
		f.logger.Error("failed to hash password", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.HashedPassword = hashed

	if err := f.users.Create(ctx, user); err != nil {
		return nil, err
	}

	f.logger.Info("user registered",
		slog.String("user_id", user.ID.String()))
	return user, nil
}

// GetUser retrieves a user by ID.
func (f *Facade) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return f.users.GetByID(ctx, id)
}

// GetUserByEmail retrieves a user by email, case-insensitively.
func (f *Facade) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return f.users.GetByEmail(ctx, email)
}

// ListUsers returns all users.
func (f *Facade) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return f.users.List(ctx)
}

// UpdateUser applies a partial update to a user. The patch is validated
// against a copy before anything is written, so a failing patch leaves
// the stored user untouched.
func (f *Facade) UpdateUser(ctx context.Context, id uuid.UUID, patch domain.UserPatch) (*domain.User, error) {
	user, err := f.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := user.WithPatch(patch)
	if err != nil {
		return nil, err
	}

	if err := f.users.Update(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// ChangePassword replaces a user's password with a new hash.
func (f *Facade) ChangePassword(ctx context.Context, id uuid.UUID, newPassword string) error {
	if len(newPassword) < minPasswordLen {
		return ErrPasswordTooShort
	}

	user, err := f.users.GetByID(ctx, id)
	if err != nil {
		return err
	}

	hashed, err := f.hasher.Hash(newPassword)
	if err != nil {
		f.logger.Error("failed to hash password", slog.String("error", err.Error()))
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.HashedPassword = hashed

	return f.users.Update(ctx, user)
}

// DeleteUser removes a user and everything that hangs off them: the
// reviews they wrote, the places they own, and the reviews of those
// places. Deleting a user that does not exist returns
// store.ErrUserNotFound; repeating a delete is therefore not silently
// idempotent.
func (f *Facade) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if _, err := f.users.GetByID(ctx, id); err != nil {
		return err
	}

	reviews, err := f.reviews.ListByUser(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to list user's reviews: %w", err)
	}
	for _, review := range reviews {
		if err := f.deleteReviewIgnoringMissing(ctx, review.ID); err != nil {
			return err
		}
	}

	places, err := f.places.ListByOwner(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to list user's places: %w", err)
	}
	for _, place := range places {
		if err := f.deletePlaceCascade(ctx, place.ID); err != nil {
			return err
		}
	}

	if err := f.users.Delete(ctx, id); err != nil {
		return err
	}

	f.logger.Info("user deleted",
		slog.String("user_id", id.String()),
		slog.Int("cascaded_reviews", len(reviews)),
		slog.Int("cascaded_places", len(places)))
	return nil
}

// Authenticate verifies a user's credentials and returns the user on
// success. Unknown emails and wrong passwords both yield
// ErrInvalidCredentials so callers cannot probe registered emails.
func (f *Facade) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := f.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if user.HashedPassword == "" {
		return nil, ErrInvalidCredentials
	}
	if err := f.hasher.Compare(user.HashedPassword, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
