package errs

import (
	"context"
	"errors"
)

// Error kinds shared by every layer. Specific errors are marked with one of
// these so callers can branch on the kind without knowing the concrete error.
var (
	// Malformed rule, slot or booking context. Never retried.
	ErrValidation = errors.New("validation error")
	// No slot, rule or config for the given key.
	ErrNotFound = errors.New("not found")

	// Expected business outcomes surfaced to the booking flow
	ErrSlotBlocked      = errors.New("slot is blocked")
	ErrCapacityExceeded = errors.New("capacity exceeded")

	// Retryable outcomes
	ErrConcurrencyConflict = errors.New("concurrency conflict")
	ErrTimeout             = errors.New("timed out waiting for slot lock")
	ErrTransient           = errors.New("transient failure")
)

// IsRetryable reports whether the caller may retry the same request.
func IsRetryable(err error) bool {
	return IsAny(err, ErrConcurrencyConflict, ErrTimeout, ErrTransient)
}

// FromContext marks an expired deadline as ErrTimeout so a caller whose
// request ran out of time while waiting can retry. Cancellation passes through.
func FromContext(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return Mark(err, ErrTimeout)
	}
	return err
}
