package scheduling

import (
	"errors"
	"fmt"
)

var (
	// ErrListingNotFound is returned when the booked listing is absent or inactive.
	ErrListingNotFound = errors.New("listing not found")

	// ErrBookingNotFound is returned when a lifecycle operation targets an unknown booking.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrWindowNotFound is returned when an availability window does not exist
	// or belongs to another provider.
	ErrWindowNotFound = errors.New("availability window not found")

	// ErrNotAllowed is returned when the acting user may not touch the booking.
	ErrNotAllowed = errors.New("not allowed")
)

// ConflictError means the requested slot is unavailable: it overlaps an
// existing booking, starts before the lead-time cutoff, or falls outside the
// provider's open hours. It is a user-facing validation outcome, never fatal.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string {
	return e.Reason
}

// InvalidInputError is a field-level validation error: malformed time or date
// string, or a start time off the slot grid.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// AsConflict reports whether err is a slot conflict.
func AsConflict(err error) (*ConflictError, bool) {
	var ce *ConflictError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

// AsInvalidInput reports whether err is a field validation error.
func AsInvalidInput(err error) (*InvalidInputError, bool) {
	var ie *InvalidInputError
	if errors.As(err, &ie) {
		return ie, true
	}
	return nil, false
}
