package service

import "errors"

// ErrInvalidCredentials is returned by login operations on any credential
// mismatch; it deliberately does not say which part was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ValidationError reports rejected input with a user-facing reason.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func invalid(reason string) error {
	return &ValidationError{Reason: reason}
}
