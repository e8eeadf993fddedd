// Package service provides the application facade coordinating users,
// places, reviews, amenities, states, and cities across the storage
// layer. Handlers talk to the facade; the facade talks to stores.
package service

import (
	"errors"
	"fmt"

	"github.com/hbnb-crew/hbnb-api/internal/domain"
)

// Common service errors - sentinel errors used across facade operations.
// Callers check for these with errors.Is(); the API layer maps them to
// HTTP status codes.
var (
	// ErrSelfReview indicates a user attempted to review their own place.
	// Wraps domain.ErrValidation so it maps to HTTP 400.
	ErrSelfReview = fmt.Errorf("%w: users cannot review their own place", domain.ErrValidation)

	// ErrPasswordTooShort indicates a registration or password change
	// with a password below the minimum length.
	ErrPasswordTooShort = fmt.Errorf(
		"%w: password must be at least %d characters", domain.ErrValidation, minPasswordLen)

	// ErrInvalidCredentials indicates a failed login. The same error is
	// returned for an unknown email and a wrong password so callers
	// cannot probe which emails are registered.
	// API layer should map this to HTTP 401 Unauthorized.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// minPasswordLen is the minimum accepted password length.
const minPasswordLen = 8
