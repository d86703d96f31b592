// Package tablerepo provides persistence for venue tables.
package tablerepo

import (
	"foodcourt/internal/core/domain/model/dining"
	"foodcourt/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// TableDTO represents the database structure for persisting venue tables.
// The number is unique among active tables; retired tables keep their row
// with active set to false.
type TableDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number string    `gorm:"index"`
	Active bool
}

// TableName specifies the database table name for venue table entities.
func (TableDTO) TableName() string {
	return "tables"
}

// fromDomain converts a table entity to its database representation.
func fromDomain(entity *dining.Table) TableDTO {
	return TableDTO{
		ID:     entity.ID().Bytes(),
		Number: entity.Number(),
		Active: entity.IsActive(),
	}
}

// toDomain converts a database DTO to a table entity.
func toDomain(dto TableDTO) (*dining.Table, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return dining.RestoreTable(id, dto.Number, dto.Active)
}
