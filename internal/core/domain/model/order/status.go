package order

import (
	"fmt"

	"foodcourt/internal/pkg/errs"
)

// Status represents the aggregate lifecycle state of an order.
// It is never set directly by a client after creation: the initial value is
// fixed at Pending, and every later change is derived from the statuses of
// the order's child items by the rollup engine.
//
// State transitions:
//
//	Pending ──┬──> Completed   (all items terminal, at least one served)
//	          │
//	          └──> Cancelled   (all items cancelled)
//
// Completed and Cancelled are final states with no further transitions.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status fixed at order creation.
	// Orders stay Pending while any child item is still being prepared.
	Pending

	// Completed indicates every child item reached a terminal status and
	// at least one of them was served.
	Completed

	// Cancelled indicates every child item was cancelled.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Completed: "Completed",
		Cancelled: "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Completed: "Completed",
		Cancelled: "Cancelled",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Completed, Cancelled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// Returns "Unknown" for invalid status values. This method implements
// the fmt.Stringer interface and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsFinal reports whether the aggregate status admits no further change.
func (s Status) IsFinal() bool {
	return s == Completed || s == Cancelled
}
