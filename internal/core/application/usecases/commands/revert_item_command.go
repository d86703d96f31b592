package commands

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/guard"
)

var ErrRevertItemCommandIsNotConstructed = errors.New(
	"RevertItemCommand must be created via NewRevertItemCommand constructor",
)

// RevertItemCommand represents a request to move an item one step backward:
// preparing to incoming, served to preparing. Used by kitchen staff to
// correct a mis-tapped advancement.
type RevertItemCommand struct { //nolint:recvcheck //using for validation
	kind   ItemKind
	itemID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRevertItemCommand creates a command to revert an item's status.
func NewRevertItemCommand(kind ItemKind, itemID kernel.UUID) (RevertItemCommand, error) {
	revertCommand := RevertItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		revertCommand.setKind(kind),
		revertCommand.setItemID(itemID),
	); err != nil {
		return RevertItemCommand{}, err
	}

	return revertCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RevertItemCommand) Validate() error {
	return c.guard.Validate(ErrRevertItemCommandIsNotConstructed)
}

// Kind returns the kind of the item being reverted.
func (c RevertItemCommand) Kind() ItemKind {
	return c.kind
}

// ItemID returns the identifier of the item being reverted.
func (c RevertItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c *RevertItemCommand) setKind(kind ItemKind) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	c.kind = kind
	return nil
}

func (c *RevertItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}
