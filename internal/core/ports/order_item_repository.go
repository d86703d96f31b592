package ports

import (
	"context"

	"foodcourt/internal/core/domain/model/item"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
)

// OrderItemRepository defines the persistence contract for standard order
// line items. It encapsulates single-row status reads and writes plus the
// sibling lookup needed by the rollup engine.
type OrderItemRepository interface {
	// Add persists a new line item. The item must be valid.
	Add(ctx context.Context, entity *order.Item) error

	// Get retrieves a line item by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Item, error)

	// GetStatusAndOrder returns the current preparation status of an item
	// together with its parent order id, or a not-found error.
	GetStatusAndOrder(ctx context.Context, id kernel.UUID) (item.Status, kernel.UUID, error)

	// SetStatus replaces an item's status with a single atomic row update.
	// Returns a not-found error when the id does not exist.
	SetStatus(ctx context.Context, id kernel.UUID, status item.Status) error

	// ListStatusesForOrder returns the statuses of every line item
	// belonging to the given order. Order of the result is unspecified;
	// it is used only for rollup aggregation.
	ListStatusesForOrder(ctx context.Context, orderID kernel.UUID) ([]item.Status, error)

	// RemoveAllForOrder hard-deletes every line item of an order.
	RemoveAllForOrder(ctx context.Context, orderID kernel.UUID) error
}
