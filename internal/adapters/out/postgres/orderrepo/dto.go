// Package orderrepo provides data transfer objects and mapping functions for
// order header persistence. This package implements the repository pattern for
// the order aggregate, handling the conversion between domain entities and
// database representations. Line items live in their own table, managed by
// the itemrepo package.
package orderrepo

import (
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order headers.
// Indexed by status for the active-orders projection and by table for
// per-table lookups.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	TableID         uuid.UUID `gorm:"type:uuid;index"`
	GuestID         uuid.UUID `gorm:"type:uuid"`
	Status          int       `gorm:"index"`
	TotalPriceCents int64
	CreatedAt       time.Time
	Remarks         string
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		TableID:         aggregate.TableID().Bytes(),
		GuestID:         aggregate.GuestID().Bytes(),
		Status:          int(aggregate.Status()),
		TotalPriceCents: aggregate.TotalPrice().Cents(),
		CreatedAt:       aggregate.CreatedAt(),
		Remarks:         aggregate.Remarks(),
	}
}

// toDomain converts a database DTO to an order aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	tableID, err := kernel.UUIDFromBytes(dto.TableID[:])
	if err != nil {
		return nil, err
	}

	guestID, err := kernel.UUIDFromBytes(dto.GuestID[:])
	if err != nil {
		return nil, err
	}

	totalPrice, err := kernel.NewMoney(dto.TotalPriceCents)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id, tableID, guestID,
		order.Status(dto.Status),
		totalPrice, dto.CreatedAt, dto.Remarks,
	)
}
