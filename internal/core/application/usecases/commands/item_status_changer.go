package commands

import (
	"context"
	"errors"
	"log/slog"

	"foodcourt/internal/core/domain/model/item"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/core/domain/services"
	"foodcourt/internal/core/ports"
	"foodcourt/internal/pkg/errs"
)

// statusTransition maps an item's current status to its next one.
// The item status state machine supplies the three concrete transitions:
// advance, revert and cancel.
type statusTransition func(item.Status) (item.Status, error)

// itemStatusChanger is the shared transactional core behind the advance,
// revert and cancel handlers. For standard items the status write and the
// parent order rollup happen in one transaction, with the parent row locked
// so concurrent sibling changes serialize. Custom items have no parent, so
// their path is a plain read-transition-write.
type itemStatusChanger struct {
	uowFactory ItemUoWFactory
	rollup     *services.OrderRollup
	notifier   ports.Notifier
	logger     *slog.Logger
}

func newItemStatusChanger(
	uowFactory ItemUoWFactory,
	rollup *services.OrderRollup,
	notifier ports.Notifier,
	logger *slog.Logger,
) itemStatusChanger {
	return itemStatusChanger{
		uowFactory: uowFactory,
		rollup:     rollup,
		notifier:   notifier,
		logger:     logger,
	}
}

func (c *itemStatusChanger) change(
	ctx context.Context,
	kind ItemKind,
	itemID kernel.UUID,
	transition statusTransition,
) error {
	uow := c.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	var (
		oldStatus item.Status
		newStatus item.Status
		orderID   kernel.UUID
		err       error
	)

	switch kind {
	case KindStandard:
		oldStatus, newStatus, orderID, err = c.changeStandard(ctx, uow, itemID, transition)
	case KindCustom:
		oldStatus, newStatus, err = c.changeCustom(ctx, uow, itemID, transition)
	case KindUnknown:
		fallthrough
	default:
		err = kind.Validate()
	}
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	event := ItemStatusChangedEvent{
		ItemID:    itemID.String(),
		ItemKind:  kind.String(),
		OldStatus: oldStatus.String(),
		NewStatus: newStatus.String(),
	}
	if kind == KindStandard {
		event.OrderID = orderID.String()
	}
	c.notifier.Notify(ctx, TopicItemStatusChanged, event)

	return nil
}

// changeStandard updates a standard item's status and rolls the result up
// into the parent order within the same transaction.
func (c *itemStatusChanger) changeStandard(
	ctx context.Context,
	uow ItemUoW,
	itemID kernel.UUID,
	transition statusTransition,
) (item.Status, item.Status, kernel.UUID, error) {
	itemRepo := uow.OrderItemRepository()

	oldStatus, orderID, err := itemRepo.GetStatusAndOrder(ctx, itemID)
	if err != nil {
		return item.Unknown, item.Unknown, kernel.UUID{}, err
	}

	newStatus, err := transition(oldStatus)
	if err != nil {
		return item.Unknown, item.Unknown, kernel.UUID{}, err
	}

	if err = itemRepo.SetStatus(ctx, itemID, newStatus); err != nil {
		return item.Unknown, item.Unknown, kernel.UUID{}, err
	}

	if err = c.rollupOrder(ctx, uow, orderID); err != nil {
		return item.Unknown, item.Unknown, kernel.UUID{}, err
	}

	return oldStatus, newStatus, orderID, nil
}

// rollupOrder locks the parent order row and recomputes its aggregate status
// from the statuses of all sibling items. A missing parent is logged and
// skipped so the item change itself still commits, and so is a parent whose
// aggregate status is already final: cancelling the last item of a completed
// order keeps the order completed.
func (c *itemStatusChanger) rollupOrder(ctx context.Context, uow ItemUoW, orderID kernel.UUID) error {
	ord, err := uow.OrderRepository().GetForUpdate(ctx, orderID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			c.logger.WarnContext(ctx, "parent order missing during rollup, skipping",
				"order_id", orderID.String())
			return nil
		}
		return err
	}

	statuses, err := uow.OrderItemRepository().ListStatusesForOrder(ctx, orderID)
	if err != nil {
		return err
	}

	changed, err := c.rollup.ResolveForOrder(ord, statuses)
	if err != nil {
		if errors.Is(err, order.ErrOrderStatusIsFinal) {
			c.logger.WarnContext(ctx, "parent order already finalized, keeping its status",
				"order_id", orderID.String(),
				"order_status", ord.Status().String())
			return nil
		}
		return err
	}
	if !changed {
		return nil
	}

	return uow.OrderRepository().Update(ctx, ord)
}

func (c *itemStatusChanger) changeCustom(
	ctx context.Context,
	uow ItemUoW,
	itemID kernel.UUID,
	transition statusTransition,
) (item.Status, item.Status, error) {
	customRepo := uow.CustomItemRepository()

	oldStatus, err := customRepo.GetStatus(ctx, itemID)
	if err != nil {
		return item.Unknown, item.Unknown, err
	}

	newStatus, err := transition(oldStatus)
	if err != nil {
		return item.Unknown, item.Unknown, err
	}

	if err = customRepo.SetStatus(ctx, itemID, newStatus); err != nil {
		return item.Unknown, item.Unknown, err
	}

	return oldStatus, newStatus, nil
}
