package ports

import (
	"context"

	"foodcourt/internal/core/domain/model/customitem"
	"foodcourt/internal/core/domain/model/item"
	"foodcourt/internal/core/domain/model/kernel"
)

// CustomItemRepository defines the persistence contract for custom order
// items. Custom items have no parent order, so status changes never trigger
// rollup.
type CustomItemRepository interface {
	// Add persists a new custom item. The item must be valid.
	Add(ctx context.Context, entity *customitem.CustomItem) error

	// Get retrieves a custom item by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*customitem.CustomItem, error)

	// GetStatus returns the current preparation status of a custom item,
	// or a not-found error.
	GetStatus(ctx context.Context, id kernel.UUID) (item.Status, error)

	// SetStatus replaces a custom item's status with a single atomic row
	// update. Returns a not-found error when the id does not exist.
	SetStatus(ctx context.Context, id kernel.UUID, status item.Status) error

	// Remove hard-deletes a custom item by id.
	// Returns a not-found error when the id does not exist.
	Remove(ctx context.Context, id kernel.UUID) error
}
