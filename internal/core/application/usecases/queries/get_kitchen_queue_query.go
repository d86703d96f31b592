package queries

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/guard"
)

var ErrGetKitchenQueueQueryIsNotConstructed = errors.New(
	"GetKitchenQueueQuery must be created via NewGetKitchenQueueQuery constructor",
)

// GetKitchenQueueQuery retrieves every in-flight item, standard and custom,
// as one flat work queue for kitchen displays.
//
// Example:
//
//	query := NewGetKitchenQueueQuery()
//	handler := NewGetKitchenQueueQueryHandler(db)
//
//	queue, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get kitchen queue: %w", err)
//	}
type GetKitchenQueueQuery struct {
	guard guard.ConstructorGuard
}

// NewGetKitchenQueueQuery creates a query to retrieve the kitchen work queue.
func NewGetKitchenQueueQuery() GetKitchenQueueQuery {
	return GetKitchenQueueQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetKitchenQueueQuery) Validate() error {
	return q.guard.Validate(ErrGetKitchenQueueQueryIsNotConstructed)
}

// GetKitchenQueueQueryResponse represents one queued item. OrderID is nil
// for custom items, Name is empty for standard items (kitchen displays
// resolve the menu item id against the menu).
type GetKitchenQueueQueryResponse struct {
	Kind     string
	ItemID   kernel.UUID
	OrderID  *kernel.UUID
	Name     string
	Quantity int
	Status   string
	Notes    string
}
