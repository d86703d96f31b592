package services

import (
	"foodcourt/internal/core/domain/model/item"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/pkg/errs"
)

// OrderRollup computes an order's aggregate status from the complete set of
// its child item statuses and decides whether an update is needed.
//
// Rollup rules:
//   - If any item is still non-terminal (Incoming, Preparing), the order
//     keeps its current aggregate status: no update, the rollup succeeds
//     as a no-op.
//   - If all items are terminal and all of them are Cancelled, the order
//     becomes Cancelled.
//   - If all items are terminal and at least one is Served, the order
//     becomes Completed. Any non-all-cancelled terminal set counts as a
//     successful order; this mirrors the venue's observed policy.
//
// The rollup is idempotent: re-running it with the same inputs yields the
// same result and reports that no write is needed when the stored value
// already matches.
//
// Example:
//
//	rollup := services.NewOrderRollup()
//	newStatus, changed, err := rollup.Resolve(ord.Status(), statuses)
//	if err != nil {
//	    return err
//	}
//	if changed {
//	    if err := ord.ApplyRollup(newStatus); err != nil {
//	        return err
//	    }
//	    // persist ord
//	}
type OrderRollup struct{}

// NewOrderRollup creates a rollup service instance.
func NewOrderRollup() *OrderRollup {
	return &OrderRollup{}
}

// Resolve computes the aggregate status implied by the child item statuses.
//
// Parameters:
//   - current: the order's stored aggregate status
//   - statuses: the complete collection of child item statuses
//
// Returns the computed status, whether it differs from the stored value
// (i.e. whether a write is needed), and a validation error if any input
// status is invalid. An order with no items keeps its current status.
func (r *OrderRollup) Resolve(current order.Status, statuses []item.Status) (order.Status, bool, error) {
	if err := current.Validate(); err != nil {
		return order.Unknown, false, err
	}

	if len(statuses) == 0 {
		return current, false, nil
	}

	allCancelled := true
	for _, s := range statuses {
		if err := s.Validate(); err != nil {
			return order.Unknown, false, err
		}
		if !s.IsTerminal() {
			// At least one item is still in flight; the order stays as it is.
			return current, false, nil
		}
		if s != item.Cancelled {
			allCancelled = false
		}
	}

	computed := order.Completed
	if allCancelled {
		computed = order.Cancelled
	}

	return computed, computed != current, nil
}

// ResolveForOrder runs Resolve against an order aggregate and applies the
// result when a change is needed. Returns whether the aggregate was mutated.
func (r *OrderRollup) ResolveForOrder(ord *order.Order, statuses []item.Status) (bool, error) {
	if ord == nil {
		return false, errs.NewValueIsRequiredError("order")
	}
	if err := ord.Validate(); err != nil {
		return false, err
	}

	computed, changed, err := r.Resolve(ord.Status(), statuses)
	if err != nil {
		return false, err
	}
	if !changed {
		return false, nil
	}

	if err := ord.ApplyRollup(computed); err != nil {
		return false, err
	}
	return true, nil
}
