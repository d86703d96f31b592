package queries

import (
	"context"

	"foodcourt/internal/core/domain/model/item"
	"foodcourt/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetKitchenQueueQueryHandler reads the in-flight items of both kinds as one
// flat queue: incoming items first, then preparing, oldest first within each
// group. Standard line items carry no timestamp of their own, so their age is
// the parent order's creation time.
type GetKitchenQueueQueryHandler struct {
	db *gorm.DB
}

// NewGetKitchenQueueQueryHandler creates a handler for kitchen queue queries.
func NewGetKitchenQueueQueryHandler(db *gorm.DB) GetKitchenQueueQueryHandler {
	return GetKitchenQueueQueryHandler{db: db}
}

// Handle executes the query, unioning standard line items and custom items
// that have not yet reached a terminal status.
func (h GetKitchenQueueQueryHandler) Handle(
	ctx context.Context,
	query GetKitchenQueueQuery,
) ([]GetKitchenQueueQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	queue := make([]GetKitchenQueueQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT kind, id, order_id, name, quantity, status, notes FROM (
			SELECT
				'standard' AS kind,
				i.id,
				i.order_id,
				'' AS name,
				i.quantity,
				i.status,
				i.notes,
				o.created_at AS placed_at
			FROM order_items i
			JOIN orders o ON o.id = i.order_id
			WHERE i.status IN (?, ?)
			UNION ALL
			SELECT
				'custom' AS kind,
				c.id,
				NULL AS order_id,
				c.name,
				c.quantity,
				c.status,
				c.remarks AS notes,
				c.created_at AS placed_at
			FROM custom_items c
			WHERE c.status IN (?, ?)
		) q
		ORDER BY q.status, q.placed_at, q.id
	`,
		item.Incoming, item.Preparing,
		item.Incoming, item.Preparing,
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
			name     string
			quantity int
			status   int
			notes    string
		)

		if err = rows.Scan(&kind, &id, &orderID, &name, &quantity, &status, &notes); err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		resp := GetKitchenQueueQueryResponse{
			Kind:     kind,
			ItemID:   itemID,
			Name:     name,
			Quantity: quantity,
			Status:   item.Status(status).String(),
			Notes:    notes,
		}

		if orderID.Valid {
			parentID, parentErr := kernel.UUIDFromBytes(orderID.UUID[:])
			if parentErr != nil {
				return nil, parentErr
			}
			resp.OrderID = &parentID
		}

		queue = append(queue, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return queue, nil
}
