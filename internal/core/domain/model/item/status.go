// Package item defines the preparation status shared by standard order items
// and custom order items, together with the state machine that governs it.
package item

import (
	"fmt"

	"foodcourt/internal/pkg/errs"
)

// Status represents the preparation state of a single line item.
// It implements a state machine with defined transitions to ensure
// items follow the correct kitchen workflow.
//
// State transitions:
//
//	Incoming ──> Preparing ──> Served
//	    │            │
//	    └────────────┴──────> Cancelled
//	       (explicit cancel from any non-terminal state)
//
// Served and Cancelled are terminal: no forward transition exists from
// either of them. Status is a value object that validates transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Incoming is the initial status of every newly created item.
	// Items in this status are waiting for the stall to start preparation.
	Incoming

	// Preparing indicates the stall is actively preparing the item.
	Preparing

	// Served indicates the item has been delivered to the table.
	// This is a terminal state with no further forward transitions.
	Served

	// Cancelled indicates the item was cancelled before being served.
	// This is a terminal state with no further forward transitions.
	Cancelled
)

// String returns the human-readable name of the status.
//
// Returns "Unknown" for invalid status values. This method implements
// the fmt.Stringer interface and is safe to call on any Status value.
func (s Status) String() string {
	switch s {
	case Incoming:
		return "Incoming"
	case Preparing:
		return "Preparing"
	case Served:
		return "Served"
	case Cancelled:
		return "Cancelled"
	case Unknown:
		return "Unknown"
	default:
		return "Unknown"
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Incoming, Preparing, Served, Cancelled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	switch s {
	case Incoming, Preparing, Served, Cancelled:
		return nil
	case Unknown:
		fallthrough
	default:
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
}

// IsTerminal reports whether the status admits no further forward transition.
// Served and Cancelled are the terminal statuses.
func (s Status) IsTerminal() bool {
	return s == Served || s == Cancelled
}

// Advance returns the next status in the forward preparation workflow.
//
// Valid transitions:
//   - Incoming -> Preparing
//   - Preparing -> Served
//
// Invalid transitions:
//   - Served (terminal, nothing to advance to)
//   - Cancelled (terminal, nothing to advance to)
//   - Unknown (invalid initial state)
//
// Returns:
//   - (next, nil) on valid transition
//   - (0, error) if no forward transition exists from the current status
//
// Advance is total over the status domain: every status maps to either a
// strictly-forward next status or a validation error. It never returns the
// same status.
func (s Status) Advance() (Status, error) {
	switch s {
	case Incoming:
		return Preparing, nil
	case Preparing:
		return Served, nil
	case Served, Cancelled:
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is terminal and cannot be advanced", s.String()),
		)
	case Unknown:
		fallthrough
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid status to advance", s),
		)
	}
}

// Revert returns the previous status in the preparation workflow.
// Revert is the exact inverse of Advance.
//
// Valid transitions:
//   - Preparing -> Incoming
//   - Served -> Preparing
//
// Invalid transitions:
//   - Incoming (already at the start of the workflow)
//   - Cancelled (cancellation is final)
//   - Unknown (invalid initial state)
func (s Status) Revert() (Status, error) {
	switch s {
	case Preparing:
		return Incoming, nil
	case Served:
		return Preparing, nil
	case Incoming, Cancelled:
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s cannot be reverted", s.String()),
		)
	case Unknown:
		fallthrough
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid status to revert", s),
		)
	}
}

// Cancel transitions the status to Cancelled.
//
// Cancellation is reachable from any non-terminal status via this explicit
// operation, not via the forward Advance table. Cancelling an item that is
// already Served or Cancelled is a validation error, not a silent no-op.
func (s Status) Cancel() (Status, error) {
	switch s {
	case Incoming, Preparing:
		return Cancelled, nil
	case Served, Cancelled:
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is terminal and cannot be cancelled", s.String()),
		)
	case Unknown:
		fallthrough
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid status to cancel", s),
		)
	}
}
