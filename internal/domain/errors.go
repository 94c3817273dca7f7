package domain

import "errors"

// Sentinel errors shared by services and controllers. Controllers map them to
// HTTP status codes with errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("passphrase does not match")
	ErrValidation   = errors.New("validation error")
	ErrStorage      = errors.New("storage error")

	// ErrDuplicatePublicID is returned by the repository when a generated
	// public id collides with an existing event.
	ErrDuplicatePublicID = errors.New("public id already in use")
)

// ValidationError carries a user-facing message for a rejected request.
// It unwraps to ErrValidation.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError returns a *ValidationError with the given message.
func NewValidationError(msg string) error {
	return &ValidationError{Message: msg}
}
