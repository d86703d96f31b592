package commands

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/guard"
)

var ErrAdvanceItemCommandIsNotConstructed = errors.New(
	"AdvanceItemCommand must be created via NewAdvanceItemCommand constructor",
)

// AdvanceItemCommand represents a request to move an item one step forward
// along its preparation lifecycle: incoming to preparing, preparing to served.
type AdvanceItemCommand struct { //nolint:recvcheck //using for validation
	kind   ItemKind
	itemID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAdvanceItemCommand creates a command to advance an item's status.
// Validates that the kind is known and the item id is valid.
func NewAdvanceItemCommand(kind ItemKind, itemID kernel.UUID) (AdvanceItemCommand, error) {
	advanceCommand := AdvanceItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		advanceCommand.setKind(kind),
		advanceCommand.setItemID(itemID),
	); err != nil {
		return AdvanceItemCommand{}, err
	}

	return advanceCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceItemCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceItemCommandIsNotConstructed)
}

// Kind returns the kind of the item being advanced.
func (c AdvanceItemCommand) Kind() ItemKind {
	return c.kind
}

// ItemID returns the identifier of the item being advanced.
func (c AdvanceItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c *AdvanceItemCommand) setKind(kind ItemKind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	c.kind = kind
	return nil
}

func (c *AdvanceItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}
