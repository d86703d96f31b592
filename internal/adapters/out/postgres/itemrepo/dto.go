// Package itemrepo provides persistence for standard order line items.
// Line items are stored in their own table keyed by the parent order id so
// that status updates and rollup aggregation work on single rows instead of
// rewriting the whole order aggregate.
package itemrepo

import (
	"foodcourt/internal/core/domain/model/item"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// ItemDTO represents the database structure for persisting order line items.
// Indexed by order for sibling lookups during rollup and by status for the
// kitchen queue projection.
type ItemDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID `gorm:"type:uuid;index"`
	MenuItemID     uuid.UUID `gorm:"type:uuid"`
	Quantity       int
	UnitPriceCents int64
	SubtotalCents  int64
	Status         int `gorm:"index"`
	Notes          string
}

// TableName specifies the database table name for line item entities.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts a line item entity to its database representation.
func fromDomain(entity *order.Item) ItemDTO {
	return ItemDTO{
		ID:             entity.ID().Bytes(),
		OrderID:        entity.OrderID().Bytes(),
		MenuItemID:     entity.MenuItemID().Bytes(),
		Quantity:       entity.Quantity(),
		UnitPriceCents: entity.UnitPrice().Cents(),
		SubtotalCents:  entity.Subtotal().Cents(),
		Status:         int(entity.Status()),
		Notes:          entity.Notes(),
	}
}

// toDomain converts a database DTO to a line item entity using RestoreItem.
func toDomain(dto ItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	menuItemID, err := kernel.UUIDFromBytes(dto.MenuItemID[:])
	if err != nil {
		return nil, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPriceCents)
	if err != nil {
		return nil, err
	}

	subtotal, err := kernel.NewMoney(dto.SubtotalCents)
	if err != nil {
		return nil, err
	}

	return order.RestoreItem(
		id, orderID, menuItemID,
		dto.Quantity, unitPrice, subtotal,
		item.Status(dto.Status), dto.Notes,
	)
}
