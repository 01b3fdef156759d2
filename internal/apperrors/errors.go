package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidState indicates that the operation is not allowed in the resource's current lifecycle state.
var ErrInvalidState = errors.New("invalid state")

// AppError carries a user-facing message on top of an underlying error kind.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError. Err is usually one of the sentinel kinds above.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// Message returns the user-facing message of err, falling back to err.Error().
func Message(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}

// NotFound builds a not-found error with a user-facing message.
func NotFound(message string) error {
	return NewAppError(404, message, ErrNotFound)
}

// Validation builds an invalid-argument error with a user-facing message.
func Validation(message string) error {
	return NewAppError(400, message, ErrValidation)
}

// InvalidState builds a lifecycle error with a user-facing message.
func InvalidState(message string) error {
	return NewAppError(400, message, ErrInvalidState)
}

// Conflict builds a duplicate/idempotency error with a user-facing message.
func Conflict(message string) error {
	return NewAppError(409, message, ErrDuplicate)
}

// IsKnown reports whether err carries a user-facing AppError anywhere in its chain.
func IsKnown(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}
