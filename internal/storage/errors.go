package storage

import "errors"

// Failure classes returned by Store implementations. Callers branch with
// errors.Is; anything not wrapping one of these is an unclassified storage
// failure.
var (
	// ErrDuplicateKey reports a unique-constraint violation (duplicate
	// phone number, room number, or payment period).
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrNotAvailable reports that the requested resource is missing or
	// already taken (e.g. an occupied bed).
	ErrNotAvailable = errors.New("not available")

	// ErrAlreadyAssigned reports a one-to-one cardinality violation
	// (e.g. a renter who already holds a bed).
	ErrAlreadyAssigned = errors.New("already assigned")

	// ErrNotFound reports that the referenced record does not exist.
	ErrNotFound = errors.New("not found")
)

// OpError is a classified operation failure with a user-facing reason.
// Error() returns the reason verbatim; errors.Is matches the class.
type OpError struct {
	Kind   error
	Reason string
}

func (e *OpError) Error() string { return e.Reason }

func (e *OpError) Unwrap() error { return e.Kind }

// Fail builds a classified failure with a user-facing reason.
func Fail(kind error, reason string) error {
	return &OpError{Kind: kind, Reason: reason}
}
