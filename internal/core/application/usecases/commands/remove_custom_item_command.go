package commands

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/guard"
)

var ErrRemoveCustomItemCommandIsNotConstructed = errors.New(
	"RemoveCustomItemCommand must be created via NewRemoveCustomItemCommand constructor",
)

// RemoveCustomItemCommand represents a staff request to hard-delete a
// custom item, typically after a data entry mistake.
type RemoveCustomItemCommand struct { //nolint:recvcheck //using for validation
	customItemID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveCustomItemCommand creates a command to remove a custom item.
func NewRemoveCustomItemCommand(customItemID kernel.UUID) (RemoveCustomItemCommand, error) {
	removeCommand := RemoveCustomItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := removeCommand.setCustomItemID(customItemID); err != nil {
		return RemoveCustomItemCommand{}, err
	}

	return removeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveCustomItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCustomItemCommandIsNotConstructed)
}

// CustomItemID returns the identifier of the custom item being removed.
func (c RemoveCustomItemCommand) CustomItemID() kernel.UUID {
	return c.customItemID
}

func (c *RemoveCustomItemCommand) setCustomItemID(customItemID kernel.UUID) error {
	if err := customItemID.Validate(); err != nil {
		return err
	}

	c.customItemID = customItemID
	return nil
}
