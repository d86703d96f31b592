package commands

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/guard"
)

var ErrCancelItemCommandIsNotConstructed = errors.New(
	"CancelItemCommand must be created via NewCancelItemCommand constructor",
)

// CancelItemCommand represents a request to cancel an item from any
// non-terminal status.
type CancelItemCommand struct { //nolint:recvcheck //using for validation
	kind   ItemKind
	itemID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelItemCommand creates a command to cancel an item.
func NewCancelItemCommand(kind ItemKind, itemID kernel.UUID) (CancelItemCommand, error) {
	cancelCommand := CancelItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cancelCommand.setKind(kind),
		cancelCommand.setItemID(itemID),
	); err != nil {
		return CancelItemCommand{}, err
	}

	return cancelCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelItemCommand) Validate() error {
	return c.guard.Validate(ErrCancelItemCommandIsNotConstructed)
}

// Kind returns the kind of the item being cancelled.
func (c CancelItemCommand) Kind() ItemKind {
	return c.kind
}

// ItemID returns the identifier of the item being cancelled.
func (c CancelItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c *CancelItemCommand) setKind(kind ItemKind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	c.kind = kind
	return nil
}

func (c *CancelItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}
