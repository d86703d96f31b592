package commands

import (
	"context"
	"log/slog"

	"foodcourt/internal/core/domain/model/item"
	"foodcourt/internal/core/domain/services"
	"foodcourt/internal/core/ports"
)

// AdvanceItemCommandHandler moves an item one step forward along the
// preparation lifecycle. For standard items the parent order's aggregate
// status is recomputed in the same transaction as the item update.
//
// Example:
//
//	handler := NewAdvanceItemCommandHandler(uowFactory, rollup, notifier, logger)
//	cmd, _ := NewAdvanceItemCommand(KindStandard, itemID)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("advance failed: %w", err)
//	}
type AdvanceItemCommandHandler struct {
	changer itemStatusChanger
}

// NewAdvanceItemCommandHandler creates a handler for item advancement.
func NewAdvanceItemCommandHandler(
	uowFactory ItemUoWFactory,
	rollup *services.OrderRollup,
	notifier ports.Notifier,
	logger *slog.Logger,
) AdvanceItemCommandHandler {
	return AdvanceItemCommandHandler{
		changer: newItemStatusChanger(uowFactory, rollup, notifier, logger),
	}
}

// Handle processes the advance command. Advancing a terminal item (served
// or cancelled) is rejected with a validation error.
func (h *AdvanceItemCommandHandler) Handle(ctx context.Context, cmd AdvanceItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.changer.change(ctx, cmd.Kind(), cmd.ItemID(), item.Status.Advance)
}
