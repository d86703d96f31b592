package commands

import (
	"context"
	"log/slog"

	"foodcourt/internal/core/domain/model/item"
	"foodcourt/internal/core/domain/services"
	"foodcourt/internal/core/ports"
)

// CancelItemCommandHandler cancels an item from any non-terminal status.
// Cancelling the last in-flight item finalizes the parent order in the same
// transaction: cancelled if every sibling ended cancelled, completed
// otherwise.
type CancelItemCommandHandler struct {
	changer itemStatusChanger
}

// NewCancelItemCommandHandler creates a handler for item cancellation.
func NewCancelItemCommandHandler(
	uowFactory ItemUoWFactory,
	rollup *services.OrderRollup,
	notifier ports.Notifier,
	logger *slog.Logger,
) CancelItemCommandHandler {
	return CancelItemCommandHandler{
		changer: newItemStatusChanger(uowFactory, rollup, notifier, logger),
	}
}

// Handle processes the cancel command. Cancelling an already terminal item
// (served or cancelled) is rejected with a validation error.
func (h *CancelItemCommandHandler) Handle(ctx context.Context, cmd CancelItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.changer.change(ctx, cmd.Kind(), cmd.ItemID(), item.Status.Cancel)
}
