package queries

import (
	"context"
	"time"

	"foodcourt/internal/core/domain/model/item"
	"foodcourt/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStaleItemsQueryHandler reads items that have been waiting in incoming
// past the query's threshold, across both item kinds.
type GetStaleItemsQueryHandler struct {
	db *gorm.DB
}

// NewGetStaleItemsQueryHandler creates a handler for stale item queries.
func NewGetStaleItemsQueryHandler(db *gorm.DB) GetStaleItemsQueryHandler {
	return GetStaleItemsQueryHandler{db: db}
}

// Handle executes the query. The cutoff is computed against the clock at
// call time.
func (h GetStaleItemsQueryHandler) Handle(
	ctx context.Context,
	query GetStaleItemsQuery,
) ([]GetStaleItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cutoff := time.Now().Add(-query.OlderThan())
	stale := make([]GetStaleItemsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT kind, id, order_id, placed_at FROM (
			SELECT
				'standard' AS kind,
				i.id,
				i.order_id,
				o.created_at AS placed_at
			FROM order_items i
			JOIN orders o ON o.id = i.order_id
			WHERE i.status = ? AND o.created_at < ?
			UNION ALL
			SELECT
				'custom' AS kind,
				c.id,
				NULL AS order_id,
				c.created_at AS placed_at
			FROM custom_items c
			WHERE c.status = ? AND c.created_at < ?
		) q
		ORDER BY q.placed_at
	`,
		item.Incoming, cutoff,
		item.Incoming, cutoff,
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			kind     string
			id       uuid.UUID
			orderID  uuid.NullUUID
			placedAt time.Time
		)

		if err = rows.Scan(&kind, &id, &orderID, &placedAt); err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		resp := GetStaleItemsQueryResponse{
			Kind:     kind,
			ItemID:   itemID,
			PlacedAt: placedAt,
		}

		if orderID.Valid {
			parentID, parentErr := kernel.UUIDFromBytes(orderID.UUID[:])
			if parentErr != nil {
				return nil, parentErr
			}
			resp.OrderID = &parentID
		}

		stale = append(stale, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return stale, nil
}
