package domain

import "errors"

// ErrValidation is the root of the validation error family. Every
// field-level validation failure wraps it, so callers can classify an
// error with errors.Is(err, domain.ErrValidation) without knowing the
// offending field.
var ErrValidation = errors.New("validation failed")
