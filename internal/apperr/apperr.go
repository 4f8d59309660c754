// Package apperr defines the error kinds the service layer is allowed to
// return and their HTTP status mapping. Handlers translate errors through
// Status and Message only; raw store or driver errors never reach a client.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrMissingToken       = errors.New("missing auth token")
	ErrInvalidToken       = errors.New("invalid auth token")
	ErrTokenExpired       = errors.New("auth token expired")
	ErrMalformedToken     = errors.New("malformed auth token")
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrForbidden = errors.New("you are not the owner")
	ErrNotFound  = errors.New("not found")
	ErrConflict  = errors.New("email already exists")
	ErrCrypto    = errors.New("corrupt cipher data")
)

// ValidationError reports a rejected input field. It unwraps to a shared
// sentinel so callers can match the kind without knowing the field.
type ValidationError struct {
	Field  string
	Reason string
}

var errValidation = errors.New("validation failed")

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return errValidation }

// NewValidation builds a ValidationError for a single field.
func NewValidation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is a validation failure of any field.
func IsValidation(err error) bool {
	return errors.Is(err, errValidation)
}

// Status maps an error to its HTTP status code. Unrecognized errors are
// treated as internal failures.
func Status(err error) int {
	switch {
	case IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, ErrMissingToken),
		errors.Is(err, ErrInvalidToken),
		errors.Is(err, ErrTokenExpired),
		errors.Is(err, ErrMalformedToken),
		errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the client-facing message for an error. Internal failures
// collapse to a generic message so driver details never leak.
func Message(err error) string {
	if Status(err) == http.StatusInternalServerError && !errors.Is(err, ErrCrypto) {
		return "internal server error"
	}
	return err.Error()
}
