package commands

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/guard"
)

var (
	ErrCreateCustomItemCommandIsNotConstructed = errors.New(
		"CreateCustomItemCommand must be created via NewCreateCustomItemCommand constructor",
	)
	ErrCustomItemNameIsRequired    = errors.New("custom item name is required")
	ErrCustomItemQuantityIsInvalid = errors.New("custom item quantity must be greater than 0")
)

// CreateCustomItemCommand represents a staff request to register an
// off-menu item against a stall and table. Custom items live outside any
// order aggregate and are tracked by the same status lifecycle as standard
// line items.
type CreateCustomItemCommand struct { //nolint:recvcheck //using for validation
	customItemID kernel.UUID
	stallID      kernel.UUID
	tableID      kernel.UUID
	guestID      *kernel.UUID
	name         string
	quantity     int
	priceCents   int64
	remarks      string

	guard guard.ConstructorGuard
}

// NewCreateCustomItemCommand creates a command to register a custom item.
// The guest id is optional; walk-up requests have none.
func NewCreateCustomItemCommand(
	customItemID, stallID, tableID kernel.UUID,
	guestID *kernel.UUID,
	name string,
	quantity int,
	priceCents int64,
	remarks string,
) (CreateCustomItemCommand, error) {
	customItemCommand := CreateCustomItemCommand{
		remarks: remarks,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		customItemCommand.setCustomItemID(customItemID),
		customItemCommand.setStallID(stallID),
		customItemCommand.setTableID(tableID),
		customItemCommand.setGuestID(guestID),
		customItemCommand.setName(name),
		customItemCommand.setQuantity(quantity),
		customItemCommand.setPriceCents(priceCents),
	); err != nil {
		return CreateCustomItemCommand{}, err
	}

	return customItemCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCustomItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomItemCommandIsNotConstructed)
}

// CustomItemID returns the unique identifier for the new custom item.
func (c CreateCustomItemCommand) CustomItemID() kernel.UUID {
	return c.customItemID
}

// StallID returns the identifier of the preparing stall.
func (c CreateCustomItemCommand) StallID() kernel.UUID {
	return c.stallID
}

// TableID returns the identifier of the destination table.
func (c CreateCustomItemCommand) TableID() kernel.UUID {
	return c.tableID
}

// GuestID returns the optional identifier of the requesting guest.
func (c CreateCustomItemCommand) GuestID() *kernel.UUID {
	return c.guestID
}

// Name returns the free-form item name.
func (c CreateCustomItemCommand) Name() string {
	return c.name
}

// Quantity returns the requested quantity.
func (c CreateCustomItemCommand) Quantity() int {
	return c.quantity
}

// PriceCents returns the agreed price in cents.
func (c CreateCustomItemCommand) PriceCents() int64 {
	return c.priceCents
}

// Remarks returns the free-form remarks.
func (c CreateCustomItemCommand) Remarks() string {
	return c.remarks
}

func (c *CreateCustomItemCommand) setCustomItemID(customItemID kernel.UUID) error {
	if err := customItemID.Validate(); err != nil {
		return err
	}

	c.customItemID = customItemID
	return nil
}

func (c *CreateCustomItemCommand) setStallID(stallID kernel.UUID) error {
	if err := stallID.Validate(); err != nil {
		return err
	}

	c.stallID = stallID
	return nil
}

func (c *CreateCustomItemCommand) setTableID(tableID kernel.UUID) error {
	if err := tableID.Validate(); err != nil {
		return err
	}

	c.tableID = tableID
	return nil
}

func (c *CreateCustomItemCommand) setGuestID(guestID *kernel.UUID) error {
	if guestID != nil {
		if err := guestID.Validate(); err != nil {
			return err
		}
	}

	c.guestID = guestID
	return nil
}

func (c *CreateCustomItemCommand) setName(name string) error {
	if name == "" {
		return ErrCustomItemNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateCustomItemCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrCustomItemQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}

func (c *CreateCustomItemCommand) setPriceCents(priceCents int64) error {
	if _, err := kernel.NewMoney(priceCents); err != nil {
		return err
	}

	c.priceCents = priceCents
	return nil
}
