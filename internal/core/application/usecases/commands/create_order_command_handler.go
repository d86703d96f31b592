package commands

import (
	"context"
	"log/slog"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Resolves the requested table, opens the order header in "pending" status
// with the client-supplied total price and persists every line item in
// "incoming" status within one transaction.
// A creation notification is published only after the transaction commits.
type CreateOrderCommandHandler struct {
	uowFactory CreateOrderUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(
	uowFactory CreateOrderUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the order creation command.
// The table lookup, the header insert and all line item inserts share one
// transaction: a mid-flight failure leaves no partial order behind.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	table, err := uow.TableRepository().GetActiveByNumber(ctx, cmd.TableNumber())
	if err != nil {
		return err
	}

	totalPrice, err := kernel.NewMoney(cmd.TotalPriceCents())
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), table.ID(), cmd.GuestID(), totalPrice, cmd.Remarks())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	itemRepo := uow.OrderItemRepository()
	for _, line := range cmd.LineItems() {
		unitPrice, priceErr := kernel.NewMoney(line.UnitPriceCents)
		if priceErr != nil {
			return priceErr
		}

		lineItem, itemErr := order.NewItem(
			kernel.NewUUID(), newOrder.ID(), line.MenuItemID,
			line.Quantity, unitPrice, line.Notes,
		)
		if itemErr != nil {
			return itemErr
		}

		if err = itemRepo.Add(ctx, lineItem); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Notify(ctx, TopicOrderCreated, OrderCreatedEvent{
		OrderID:     newOrder.ID().String(),
		TableNumber: table.Number(),
		ItemCount:   len(cmd.LineItems()),
		TotalPrice:  totalPrice.String(),
	})

	h.logger.InfoContext(ctx, "order created",
		"order_id", newOrder.ID().String(),
		"table", table.Number(),
		"items", len(cmd.LineItems()),
	)

	return nil
}
