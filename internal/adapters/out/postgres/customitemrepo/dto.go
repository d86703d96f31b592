// Package customitemrepo provides persistence for staff-entered custom items.
// Custom items share the line item status lifecycle but have no parent order,
// so they live in their own table keyed by stall and table.
package customitemrepo

import (
	"time"

	"foodcourt/internal/core/domain/model/customitem"
	"foodcourt/internal/core/domain/model/item"
	"foodcourt/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomItemDTO represents the database structure for persisting custom items.
type CustomItemDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	StallID    uuid.UUID  `gorm:"type:uuid;index"`
	TableID    uuid.UUID  `gorm:"type:uuid;index"`
	GuestID    *uuid.UUID `gorm:"type:uuid"`
	Name       string
	Status     int `gorm:"index"`
	Quantity   int
	PriceCents int64
	CreatedAt  time.Time
	Remarks    string
}

// TableName specifies the database table name for custom item entities.
func (CustomItemDTO) TableName() string {
	return "custom_items"
}

// fromDomain converts a custom item entity to its database representation.
func fromDomain(entity *customitem.CustomItem) CustomItemDTO {
	var guestID *uuid.UUID
	if id := entity.GuestID(); id != nil {
		raw := id.Bytes()
		guestID = &raw
	}

	return CustomItemDTO{
		ID:         entity.ID().Bytes(),
		StallID:    entity.StallID().Bytes(),
		TableID:    entity.TableID().Bytes(),
		GuestID:    guestID,
		Name:       entity.Name(),
		Status:     int(entity.Status()),
		Quantity:   entity.Quantity(),
		PriceCents: entity.Price().Cents(),
		CreatedAt:  entity.CreatedAt(),
		Remarks:    entity.Remarks(),
	}
}

// toDomain converts a database DTO to a custom item entity.
func toDomain(dto CustomItemDTO) (*customitem.CustomItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	stallID, err := kernel.UUIDFromBytes(dto.StallID[:])
	if err != nil {
		return nil, err
	}

	tableID, err := kernel.UUIDFromBytes(dto.TableID[:])
	if err != nil {
		return nil, err
	}

	var guestID *kernel.UUID
	if dto.GuestID != nil {
		gID, guestErr := kernel.UUIDFromBytes((*dto.GuestID)[:])
		if guestErr != nil {
			return nil, guestErr
		}
		guestID = &gID
	}

	price, err := kernel.NewMoney(dto.PriceCents)
	if err != nil {
		return nil, err
	}

	return customitem.RestoreCustomItem(
		id, stallID, tableID, guestID,
		dto.Name, item.Status(dto.Status),
		dto.Quantity, price, dto.CreatedAt, dto.Remarks,
	)
}
