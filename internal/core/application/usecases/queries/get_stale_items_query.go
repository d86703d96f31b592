package queries

import (
	"errors"
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"
	"foodcourt/internal/pkg/guard"
)

var ErrGetStaleItemsQueryIsNotConstructed = errors.New(
	"GetStaleItemsQuery must be created via NewGetStaleItemsQuery constructor",
)

// GetStaleItemsQuery finds items that have sat in the incoming status for
// longer than a threshold. Standard items age from their order's creation
// time, custom items from their own.
type GetStaleItemsQuery struct { //nolint:recvcheck //using for validation
	olderThan time.Duration

	guard guard.ConstructorGuard
}

// NewGetStaleItemsQuery creates a query for items stuck in incoming longer
// than olderThan. The threshold must be positive.
func NewGetStaleItemsQuery(olderThan time.Duration) (GetStaleItemsQuery, error) {
	if olderThan <= 0 {
		return GetStaleItemsQuery{}, errs.NewValueIsInvalidError("olderThan")
	}

	return GetStaleItemsQuery{
		olderThan: olderThan,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStaleItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetStaleItemsQueryIsNotConstructed)
}

// OlderThan returns the staleness threshold.
func (q GetStaleItemsQuery) OlderThan() time.Duration {
	return q.olderThan
}

// GetStaleItemsQueryResponse represents one stale item. OrderID is nil for
// custom items.
type GetStaleItemsQueryResponse struct {
	Kind     string
	ItemID   kernel.UUID
	OrderID  *kernel.UUID
	PlacedAt time.Time
}
