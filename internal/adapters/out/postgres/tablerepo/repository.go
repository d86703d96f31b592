package tablerepo

import (
	"context"
	"errors"

	"foodcourt/internal/core/domain/model/dining"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTableRepository implements TableRepository using GORM.
type GormTableRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTableRepository creates a new GORM table repository.
func NewGormTableRepository(db *gorm.DB, tracker aggregateTracker) *GormTableRepository {
	return &GormTableRepository{
		db:      db,
		tracker: tracker,
	}
}

// GetActiveByNumber retrieves the active table with the given number.
func (r *GormTableRepository) GetActiveByNumber(ctx context.Context, number string) (*dining.Table, error) {
	var dto TableDTO
	err := r.db.WithContext(ctx).
		First(&dto, "number = ? AND active = ?", number, true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("table", number)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Add saves a new table to the database.
func (r *GormTableRepository) Add(ctx context.Context, entity *dining.Table) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entity)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(entity.ID(), entity)
	return nil
}
