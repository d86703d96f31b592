// Package ports defines repository and collaborator interfaces for the
// food-court domain. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates
// (the order header; line items are managed by OrderItemRepository).
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order aggregate by id while holding a
	// row-level write lock for the remainder of the current transaction.
	// The rollup step uses this to serialize concurrent sibling status
	// changes against the same parent order.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Remove hard-deletes an order header by id.
	// Returns a not-found error when the id does not exist.
	Remove(ctx context.Context, id kernel.UUID) error
}
