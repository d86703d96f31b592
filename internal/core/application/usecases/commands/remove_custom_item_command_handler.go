package commands

import (
	"context"
	"log/slog"

	"foodcourt/internal/core/ports"
)

// RemoveCustomItemCommandHandler hard-deletes a custom item.
type RemoveCustomItemCommandHandler struct {
	uowFactory CustomItemUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewRemoveCustomItemCommandHandler creates a handler for custom item removal.
func NewRemoveCustomItemCommandHandler(
	uowFactory CustomItemUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) RemoveCustomItemCommandHandler {
	return RemoveCustomItemCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the custom item removal command.
// Returns a not-found error when the custom item does not exist.
func (h *RemoveCustomItemCommandHandler) Handle(ctx context.Context, cmd RemoveCustomItemCommand) error {
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

	if err := uow.CustomItemRepository().Remove(ctx, cmd.CustomItemID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ctx, TopicCustomItemRemoved, CustomItemRemovedEvent{
		CustomItemID: cmd.CustomItemID().String(),
	})

	h.logger.InfoContext(ctx, "custom item removed",
		"custom_item_id", cmd.CustomItemID().String())

	return nil
}
