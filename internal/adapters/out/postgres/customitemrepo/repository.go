package customitemrepo

import (
	"context"
	"errors"

	"foodcourt/internal/core/domain/model/customitem"
	"foodcourt/internal/core/domain/model/item"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCustomItemRepository implements CustomItemRepository using GORM.
type GormCustomItemRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCustomItemRepository creates a new GORM custom item repository.
func NewGormCustomItemRepository(db *gorm.DB, tracker aggregateTracker) *GormCustomItemRepository {
	return &GormCustomItemRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new custom item to the database.
func (r *GormCustomItemRepository) Add(ctx context.Context, entity *customitem.CustomItem) error {
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

// Get retrieves a custom item by ID.
func (r *GormCustomItemRepository) Get(ctx context.Context, id kernel.UUID) (*customitem.CustomItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CustomItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("custom item", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetStatus reads only the status of a custom item.
func (r *GormCustomItemRepository) GetStatus(ctx context.Context, id kernel.UUID) (item.Status, error) {
	if err := id.Validate(); err != nil {
		return item.Unknown, err
	}

	var dto CustomItemDTO
	err := r.db.WithContext(ctx).
		Select("status").
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return item.Unknown, errs.NewObjectNotFoundError("custom item", id.String())
		}
		return item.Unknown, err
	}

	return item.Status(dto.Status), nil
}

// SetStatus updates a custom item's status with a single row update.
func (r *GormCustomItemRepository) SetStatus(ctx context.Context, id kernel.UUID, status item.Status) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if err := status.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&CustomItemDTO{}).
		Where("id = ?", id.Bytes()).
		Update("status", int(status))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("custom item", id.String())
	}

	return nil
}

// Remove hard-deletes a custom item by ID.
func (r *GormCustomItemRepository) Remove(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&CustomItemDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("custom item", id.String())
	}

	return nil
}
