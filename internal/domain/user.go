package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Maximum lengths for user name fields.
const maxNameLen = 50

// Common validation errors for User.
var (
	ErrEmptyUserID    = fmt.Errorf("%w: user ID cannot be empty", ErrValidation)
	ErrEmptyFirstName = fmt.Errorf("%w: first_name cannot be empty", ErrValidation)
	ErrEmptyLastName  = fmt.Errorf("%w: last_name cannot be empty", ErrValidation)
	ErrFirstNameTooLong = fmt.Errorf(
		"%w: first_name must not exceed %d characters", ErrValidation, maxNameLen)
	ErrLastNameTooLong = fmt.Errorf(
		"%w: last_name must not exceed %d characters", ErrValidation, maxNameLen)
	ErrEmptyEmail   = fmt.Errorf("%w: email cannot be empty", ErrValidation)
	ErrInvalidEmail = fmt.Errorf("%w: invalid email format", ErrValidation)
)

// User represents a registered user of the HBnB application.
type User struct {
	ID             uuid.UUID `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"` // Never expose the password hash
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser creates a new User with the given names and email.
// It generates a new UUID for the user ID and sets the creation/update
// timestamps. Returns an error if validation fails.
//
// The user carries no password; the caller (the facade) is responsible
// for hashing a plaintext password and setting HashedPassword.
func NewUser(firstName, lastName, email string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		ID:        uuid.New(),
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
		Email:     strings.TrimSpace(email),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error wrapping ErrValidation if any field fails validation.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	if strings.TrimSpace(u.FirstName) == "" {
		return ErrEmptyFirstName
	}
	if len(u.FirstName) > maxNameLen {
		return ErrFirstNameTooLong
	}

	if strings.TrimSpace(u.LastName) == "" {
		return ErrEmptyLastName
	}
	if len(u.LastName) > maxNameLen {
		return ErrLastNameTooLong
	}

	if strings.TrimSpace(u.Email) == "" {
		return ErrEmptyEmail
	}
	if !validEmailFormat(u.Email) {
		return ErrInvalidEmail
	}

	return nil
}

// UserPatch describes a partial update to a User. Nil fields are left
// unchanged. ID and CreatedAt are not patchable; the password is handled
// separately by the facade because it must be hashed.
type UserPatch struct {
	FirstName *string
	LastName  *string
	Email     *string
}

// WithPatch returns a validated copy of the user with the patch applied
// and UpdatedAt refreshed. The receiver is never modified, so a failed
// validation leaves the stored entity untouched.
func (u *User) WithPatch(patch UserPatch) (*User, error) {
	candidate := *u
	if patch.FirstName != nil {
		candidate.FirstName = strings.TrimSpace(*patch.FirstName)
	}
	if patch.LastName != nil {
		candidate.LastName = strings.TrimSpace(*patch.LastName)
	}
	if patch.Email != nil {
		candidate.Email = strings.TrimSpace(*patch.Email)
	}
	candidate.UpdatedAt = time.Now().UTC()

	if err := candidate.Validate(); err != nil {
		return nil, err
	}

	return &candidate, nil
}

// validEmailFormat performs basic validation of email format: a single
// '@' with a non-empty local part and a domain part containing an
// interior dot. Deliberately simple; full RFC 5322 parsing is out of
// scope for this application.
func validEmailFormat(email string) bool {
	at := strings.IndexByte(email, '@')
	if at <= 0 || at == len(email)-1 {
		return false
	}
	if strings.IndexByte(email[at+1:], '@') != -1 {
		return false
	}

	domain := email[at+1:]
	dot := strings.IndexByte(domain, '.')
	return dot > 0 && dot < len(domain)-1
}
