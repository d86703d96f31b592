package commands

import (
	"context"
	"log/slog"

	"foodcourt/internal/core/ports"
)

// RemoveOrderCommandHandler hard-deletes an order and all of its line items
// in one transaction. Items are deleted first so a failure between the two
// deletes cannot strand orphaned lines.
type RemoveOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewRemoveOrderCommandHandler creates a handler for order removal.
func NewRemoveOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) RemoveOrderCommandHandler {
	return RemoveOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the order removal command.
// Returns a not-found error when the order does not exist.
func (h *RemoveOrderCommandHandler) Handle(ctx context.Context, cmd RemoveOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderItemRepository().RemoveAllForOrder(ctx, cmd.OrderID()); err != nil {
		return err
	}

	if err := uow.OrderRepository().Remove(ctx, cmd.OrderID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ctx, TopicOrderRemoved, OrderRemovedEvent{
		OrderID: cmd.OrderID().String(),
	})

	h.logger.InfoContext(ctx, "order removed", "order_id", cmd.OrderID().String())

	return nil
}
