package order

import (
	"errors"
	"time"

	"foodcourt/internal/core/domain/model/kernel"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderStatusIsFinal is returned when a rollup result is applied to an
	// order whose aggregate status already reached a final state.
	ErrOrderStatusIsFinal = errors.New("order status is final and cannot change")
)

// Order represents one dining-table order placed by a guest. It is the
// aggregate root for standard order items and manages the order lifecycle
// from creation through rollup to completion or cancellation.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and table reference
//   - Total price must be a constructed Money value
//   - Aggregate status is fixed to Pending at creation and afterwards only
//     changes through ApplyRollup, never directly by a client
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id         kernel.UUID
	tableID    kernel.UUID
	guestID    kernel.UUID
	status     Status
	totalPrice kernel.Money
	createdAt  time.Time
	remarks    string

	isConstructed bool
}

// NewOrder creates a new Order with validation. This is the only way to
// create a fresh order, ensuring all business invariants are maintained.
//
// The order is created with Pending status and the current time as its
// creation timestamp. Remarks are optional free text.
func NewOrder(id, tableID, guestID kernel.UUID, totalPrice kernel.Money, remarks string) (*Order, error) {
	order := &Order{
		status:        Pending,
		createdAt:     time.Now().UTC(),
		remarks:       remarks,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setTableID(tableID),
		order.setGuestID(guestID),
		order.setTotalPrice(totalPrice),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence with an explicit status
// and creation timestamp. The status must be a valid aggregate status.
func RestoreOrder(
	id, tableID, guestID kernel.UUID,
	status Status,
	totalPrice kernel.Money,
	createdAt time.Time,
	remarks string,
) (*Order, error) {
	order := &Order{
		createdAt:     createdAt,
		remarks:       remarks,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setTableID(tableID),
		order.setGuestID(guestID),
		order.setStatus(status),
		order.setTotalPrice(totalPrice),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// TableID returns the internal identifier of the table the order was placed at.
func (o *Order) TableID() kernel.UUID {
	return o.tableID
}

// GuestID returns the identifier of the guest who placed the order.
func (o *Order) GuestID() kernel.UUID {
	return o.guestID
}

// Status returns the current aggregate status of the order.
func (o *Order) Status() Status {
	return o.status
}

// TotalPrice returns the total price supplied at creation.
func (o *Order) TotalPrice() kernel.Money {
	return o.totalPrice
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Remarks returns the optional free-text remarks.
func (o *Order) Remarks() string {
	return o.remarks
}

// EditRemarks replaces the administrative remarks field. This is the only
// client-driven mutation allowed after creation and never touches status.
func (o *Order) EditRemarks(remarks string) {
	o.remarks = remarks
}

// ApplyRollup installs an aggregate status computed by the rollup engine.
//
// Business rules:
//   - The new status must be a valid aggregate status
//   - A final status (Completed, Cancelled) cannot be overwritten
//
// Returns nil if the status was applied, ErrOrderStatusIsFinal if the order
// already reached a final state, or a validation error for invalid input.
func (o *Order) ApplyRollup(newStatus Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}
	if o.status.IsFinal() {
		return ErrOrderStatusIsFinal
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setTableID(tableID kernel.UUID) error {
	if err := tableID.Validate(); err != nil {
		return err
	}
	o.tableID = tableID
	return nil
}

func (o *Order) setGuestID(guestID kernel.UUID) error {
	if err := guestID.Validate(); err != nil {
		return err
	}
	o.guestID = guestID
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setTotalPrice(totalPrice kernel.Money) error {
	if err := totalPrice.Validate(); err != nil {
		return err
	}
	o.totalPrice = totalPrice
	return nil
}
