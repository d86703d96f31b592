// Package customitem provides the CustomItem entity: a standalone,
// non-order-linked line item entered directly by staff for a stall/table
// pair. Custom items share the preparation status domain and transition
// table of standard order items but never participate in order-level rollup.
package customitem

import (
	"errors"
	"fmt"
	"time"

	"foodcourt/internal/core/domain/model/item"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"
)

// ErrCustomItemIsNotConstructed is returned when a CustomItem instance was
// not created through the NewCustomItem or RestoreCustomItem factory methods.
var ErrCustomItemIsNotConstructed = errors.New("CustomItem must be created via NewCustomItem constructor")

// CustomItem represents an ad-hoc line item taken manually by staff,
// created directly against a stall/table pair with a free-text name.
//
// CustomItem follows these invariants:
//   - Must have valid identifiers for itself, the stall and the table
//   - Name must not be empty
//   - Quantity must be a positive integer
//   - Preparation status follows the shared item status state machine
//
// The guest reference is optional: walk-up orders have none.
type CustomItem struct {
	id        kernel.UUID
	stallID   kernel.UUID
	tableID   kernel.UUID
	guestID   *kernel.UUID
	name      string
	status    item.Status
	quantity  int
	price     kernel.Money
	createdAt time.Time
	remarks   string

	isConstructed bool
}

// NewCustomItem creates a custom item with Incoming status and the current
// time as its creation timestamp.
func NewCustomItem(
	id, stallID, tableID kernel.UUID,
	guestID *kernel.UUID,
	name string,
	quantity int,
	price kernel.Money,
	remarks string,
) (*CustomItem, error) {
	ci := &CustomItem{
		status:        item.Incoming,
		createdAt:     time.Now().UTC(),
		remarks:       remarks,
		isConstructed: true,
	}

	if err := errors.Join(
		ci.setID(id),
		ci.setStallID(stallID),
		ci.setTableID(tableID),
		ci.setGuestID(guestID),
		ci.setName(name),
		ci.setQuantity(quantity),
		ci.setPrice(price),
	); err != nil {
		return nil, err
	}

	return ci, nil
}

// RestoreCustomItem reconstructs a CustomItem from persistence with an
// explicit status and creation timestamp.
func RestoreCustomItem(
	id, stallID, tableID kernel.UUID,
	guestID *kernel.UUID,
	name string,
	status item.Status,
	quantity int,
	price kernel.Money,
	createdAt time.Time,
	remarks string,
) (*CustomItem, error) {
	ci := &CustomItem{
		createdAt:     createdAt,
		remarks:       remarks,
		isConstructed: true,
	}

	if err := errors.Join(
		ci.setID(id),
		ci.setStallID(stallID),
		ci.setTableID(tableID),
		ci.setGuestID(guestID),
		ci.setName(name),
		ci.setStatus(status),
		ci.setQuantity(quantity),
		ci.setPrice(price),
	); err != nil {
		return nil, err
	}

	return ci, nil
}

// Validate ensures the CustomItem was properly constructed through a factory method.
func (c *CustomItem) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomItemIsNotConstructed
	}
	return nil
}

// ID returns the custom item's unique identifier.
func (c *CustomItem) ID() kernel.UUID {
	return c.id
}

// StallID returns the identifier of the stall preparing the item.
func (c *CustomItem) StallID() kernel.UUID {
	return c.stallID
}

// TableID returns the identifier of the table the item is served to.
func (c *CustomItem) TableID() kernel.UUID {
	return c.tableID
}

// GuestID returns the optional guest reference. Nil for walk-up orders.
func (c *CustomItem) GuestID() *kernel.UUID {
	return c.guestID
}

// Name returns the free-text item name.
func (c *CustomItem) Name() string {
	return c.name
}

// Status returns the current preparation status.
func (c *CustomItem) Status() item.Status {
	return c.status
}

// Quantity returns the ordered quantity.
func (c *CustomItem) Quantity() int {
	return c.quantity
}

// Price returns the item price.
func (c *CustomItem) Price() kernel.Money {
	return c.price
}

// CreatedAt returns the creation timestamp.
func (c *CustomItem) CreatedAt() time.Time {
	return c.createdAt
}

// Remarks returns the optional free-text remarks.
func (c *CustomItem) Remarks() string {
	return c.remarks
}

// ChangeStatus installs a successor status produced by the status state
// machine (Advance, Revert or Cancel). The new status must be valid.
func (c *CustomItem) ChangeStatus(next item.Status) error {
	if err := next.Validate(); err != nil {
		return err
	}

	c.status = next
	return nil
}

func (c *CustomItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *CustomItem) setStallID(stallID kernel.UUID) error {
	if err := stallID.Validate(); err != nil {
		return err
	}
	c.stallID = stallID
	return nil
}

func (c *CustomItem) setTableID(tableID kernel.UUID) error {
	if err := tableID.Validate(); err != nil {
		return err
	}
	c.tableID = tableID
	return nil
}

func (c *CustomItem) setGuestID(guestID *kernel.UUID) error {
	if guestID == nil {
		return nil
	}
	if err := guestID.Validate(); err != nil {
		return err
	}
	c.guestID = guestID
	return nil
}

func (c *CustomItem) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CustomItem) setStatus(status item.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *CustomItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	c.quantity = quantity
	return nil
}

func (c *CustomItem) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	c.price = price
	return nil
}
