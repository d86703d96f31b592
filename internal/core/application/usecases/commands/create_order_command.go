package commands

import (
	"errors"
	"fmt"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrTableNumberIsRequired = errors.New("table number is required")
	ErrLineItemsAreRequired  = errors.New("order must contain at least one line item")
	ErrTotalPriceIsNegative  = errors.New("total price must not be negative")
)

// LineItemInput describes one requested line of a new order: which menu item,
// how many, at what unit price, with optional preparation notes.
type LineItemInput struct {
	MenuItemID     kernel.UUID
	Quantity       int
	UnitPriceCents int64
	Notes          string
}

// CreateOrderCommand represents a request to open a new guest order.
// Carries the table number presented by the ordering client, the guest
// identity, the client-supplied total price and the requested line items.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, "A12", guestID, 1400, lines, "no cutlery")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, notifier, logger)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	tableNumber     string
	guestID         kernel.UUID
	totalPriceCents int64
	lineItems       []LineItemInput
	remarks         string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to open a new order.
// Validates that the order and guest ids are valid, the table number is not
// empty, the total price is not negative and every line item has a valid
// menu item id, a positive quantity and a non-negative unit price.
//
// The total price is the client's figure and is stored as given; it is not
// re-derived from the line items, which may carry stall-level adjustments.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	tableNumber string,
	guestID kernel.UUID,
	totalPriceCents int64,
	lineItems []LineItemInput,
	remarks string,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		remarks: remarks,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setTableNumber(tableNumber),
		orderCommand.setGuestID(guestID),
		orderCommand.setTotalPriceCents(totalPriceCents),
		orderCommand.setLineItems(lineItems),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TableNumber returns the human-readable table number the guest is seated at.
func (c CreateOrderCommand) TableNumber() string {
	return c.tableNumber
}

// GuestID returns the identifier of the ordering guest.
func (c CreateOrderCommand) GuestID() kernel.UUID {
	return c.guestID
}

// TotalPriceCents returns the client-supplied total price in cents.
func (c CreateOrderCommand) TotalPriceCents() int64 {
	return c.totalPriceCents
}

// LineItems returns the requested order lines.
func (c CreateOrderCommand) LineItems() []LineItemInput {
	return c.lineItems
}

// Remarks returns the free-form order remarks.
func (c CreateOrderCommand) Remarks() string {
	return c.remarks
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setTableNumber(tableNumber string) error {
	if tableNumber == "" {
		return ErrTableNumberIsRequired
	}

	c.tableNumber = tableNumber
	return nil
}

func (c *CreateOrderCommand) setGuestID(guestID kernel.UUID) error {
	if err := guestID.Validate(); err != nil {
		return err
	}

	c.guestID = guestID
	return nil
}

func (c *CreateOrderCommand) setTotalPriceCents(totalPriceCents int64) error {
	if totalPriceCents < 0 {
		return ErrTotalPriceIsNegative
	}

	c.totalPriceCents = totalPriceCents
	return nil
}

func (c *CreateOrderCommand) setLineItems(lineItems []LineItemInput) error {
	if len(lineItems) == 0 {
		return ErrLineItemsAreRequired
	}

	for i, line := range lineItems {
		if err := line.MenuItemID.Validate(); err != nil {
			return fmt.Errorf("line item %d: %w", i, err)
		}
		if line.Quantity <= 0 {
			return fmt.Errorf("line item %d: quantity must be greater than 0", i)
		}
		if line.UnitPriceCents < 0 {
			return fmt.Errorf("line item %d: unit price must not be negative", i)
		}
	}

	c.lineItems = lineItems
	return nil
}
