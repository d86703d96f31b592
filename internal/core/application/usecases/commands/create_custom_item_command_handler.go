package commands

import (
	"context"
	"log/slog"

	"foodcourt/internal/core/domain/model/customitem"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/ports"
)

// CreateCustomItemCommandHandler registers a staff-entered custom item in
// "incoming" status. No parent order exists, so no rollup is involved.
type CreateCustomItemCommandHandler struct {
	uowFactory CustomItemUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewCreateCustomItemCommandHandler creates a handler for custom item creation.
func NewCreateCustomItemCommandHandler(
	uowFactory CustomItemUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) CreateCustomItemCommandHandler {
	return CreateCustomItemCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the custom item creation command.
func (h *CreateCustomItemCommandHandler) Handle(ctx context.Context, cmd CreateCustomItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	price, err := kernel.NewMoney(cmd.PriceCents())
	if err != nil {
		return err
	}

	newItem, err := customitem.NewCustomItem(
		cmd.CustomItemID(), cmd.StallID(), cmd.TableID(), cmd.GuestID(),
		cmd.Name(), cmd.Quantity(), price, cmd.Remarks(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CustomItemRepository().Add(ctx, newItem); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ctx, TopicCustomItemCreated, CustomItemCreatedEvent{
		CustomItemID: newItem.ID().String(),
		StallID:      newItem.StallID().String(),
		TableID:      newItem.TableID().String(),
		Name:         newItem.Name(),
		Quantity:     newItem.Quantity(),
	})

	h.logger.InfoContext(ctx, "custom item created",
		"custom_item_id", newItem.ID().String(),
		"stall_id", newItem.StallID().String(),
	)

	return nil
}
