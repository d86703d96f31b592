package commands

import (
	"context"
	"log/slog"

	"foodcourt/internal/core/domain/model/item"
	"foodcourt/internal/core/domain/services"
	"foodcourt/internal/core/ports"
)

// RevertItemCommandHandler moves an item one step backward along the
// preparation lifecycle. The parent order's aggregate status is recomputed
// in the same transaction; an already finalized order keeps its status.
type RevertItemCommandHandler struct {
	changer itemStatusChanger
}

// NewRevertItemCommandHandler creates a handler for item reversion.
func NewRevertItemCommandHandler(
	uowFactory ItemUoWFactory,
	rollup *services.OrderRollup,
	notifier ports.Notifier,
	logger *slog.Logger,
) RevertItemCommandHandler {
	return RevertItemCommandHandler{
		changer: newItemStatusChanger(uowFactory, rollup, notifier, logger),
	}
}

// Handle processes the revert command. Reverting an incoming or cancelled
// item is rejected with a validation error.
func (h *RevertItemCommandHandler) Handle(ctx context.Context, cmd RevertItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.changer.change(ctx, cmd.Kind(), cmd.ItemID(), item.Status.Revert)
}
