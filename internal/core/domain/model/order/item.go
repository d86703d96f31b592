package order

import (
	"errors"
	"fmt"

	"foodcourt/internal/core/domain/model/item"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem or RestoreItem factory methods.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item represents one purchased line within an Order, tracked through its
// own preparation status. It belongs to exactly one parent order and
// references a catalog menu item.
//
// Item follows these invariants:
//   - Must have valid identifiers for itself, its parent order and the menu item
//   - Quantity must be a positive integer
//   - Line subtotal is quantity times unit price
//   - Preparation status follows the shared item status state machine;
//     once Served or Cancelled it is terminal
type Item struct {
	id         kernel.UUID
	orderID    kernel.UUID
	menuItemID kernel.UUID
	quantity   int
	unitPrice  kernel.Money
	subtotal   kernel.Money
	status     item.Status
	notes      string

	isConstructed bool
}

// NewItem creates an order line item with Incoming status and a subtotal
// derived from the unit price and quantity. This is the only way to create
// a fresh item during the order-creation transaction.
func NewItem(
	id, orderID, menuItemID kernel.UUID,
	quantity int,
	unitPrice kernel.Money,
	notes string,
) (*Item, error) {
	it := &Item{
		status:        item.Incoming,
		notes:         notes,
		isConstructed: true,
	}

	if err := errors.Join(
		it.setID(id),
		it.setOrderID(orderID),
		it.setMenuItemID(menuItemID),
		it.setQuantity(quantity),
		it.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	subtotal, err := unitPrice.Multiply(quantity)
	if err != nil {
		return nil, err
	}
	it.subtotal = subtotal

	return it, nil
}

// RestoreItem reconstructs an Item from persistence with an explicit status
// and stored subtotal.
func RestoreItem(
	id, orderID, menuItemID kernel.UUID,
	quantity int,
	unitPrice, subtotal kernel.Money,
	status item.Status,
	notes string,
) (*Item, error) {
	it := &Item{
		notes:         notes,
		isConstructed: true,
	}

	if err := errors.Join(
		it.setID(id),
		it.setOrderID(orderID),
		it.setMenuItemID(menuItemID),
		it.setQuantity(quantity),
		it.setUnitPrice(unitPrice),
		it.setSubtotal(subtotal),
		it.setStatus(status),
	); err != nil {
		return nil, err
	}

	return it, nil
}

// Validate ensures the Item was properly constructed through a factory method.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// OrderID returns the identifier of the parent order.
func (i *Item) OrderID() kernel.UUID {
	return i.orderID
}

// MenuItemID returns the catalog menu item reference.
func (i *Item) MenuItemID() kernel.UUID {
	return i.menuItemID
}

// Quantity returns the purchased quantity.
func (i *Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price per unit.
func (i *Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Subtotal returns the line subtotal (quantity times unit price).
func (i *Item) Subtotal() kernel.Money {
	return i.subtotal
}

// Status returns the current preparation status.
func (i *Item) Status() item.Status {
	return i.status
}

// Notes returns the optional per-line notes.
func (i *Item) Notes() string {
	return i.notes
}

// ChangeStatus installs a successor status produced by the status state
// machine (Advance, Revert or Cancel). The new status must be valid.
func (i *Item) ChangeStatus(next item.Status) error {
	if err := next.Validate(); err != nil {
		return err
	}

	i.status = next
	return nil
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	i.orderID = orderID
	return nil
}

func (i *Item) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}
	i.menuItemID = menuItemID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	i.unitPrice = unitPrice
	return nil
}

func (i *Item) setSubtotal(subtotal kernel.Money) error {
	if err := subtotal.Validate(); err != nil {
		return err
	}
	i.subtotal = subtotal
	return nil
}

func (i *Item) setStatus(status item.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	i.status = status
	return nil
}
