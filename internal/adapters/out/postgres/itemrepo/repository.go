package itemrepo

import (
	"context"
	"errors"

	"foodcourt/internal/core/domain/model/item"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderItemRepository implements OrderItemRepository using GORM.
type GormOrderItemRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderItemRepository creates a new GORM line item repository.
func NewGormOrderItemRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderItemRepository {
	return &GormOrderItemRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new line item to the database.
func (r *GormOrderItemRepository) Add(ctx context.Context, entity *order.Item) error {
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

// Get retrieves a line item by ID.
func (r *GormOrderItemRepository) Get(ctx context.Context, id kernel.UUID) (*order.Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order item", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetStatusAndOrder reads only the status and parent order id of a line item.
// Used on the status change path where the full entity is not needed.
func (r *GormOrderItemRepository) GetStatusAndOrder(
	ctx context.Context, id kernel.UUID,
) (item.Status, kernel.UUID, error) {
	if err := id.Validate(); err != nil {
		return item.Unknown, kernel.UUID{}, err
	}

	var dto ItemDTO
	err := r.db.WithContext(ctx).
		Select("status", "order_id").
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return item.Unknown, kernel.UUID{}, errs.NewObjectNotFoundError("order item", id.String())
		}
		return item.Unknown, kernel.UUID{}, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return item.Unknown, kernel.UUID{}, err
	}

	return item.Status(dto.Status), orderID, nil
}

// SetStatus updates a line item's status with a single row update.
func (r *GormOrderItemRepository) SetStatus(ctx context.Context, id kernel.UUID, status item.Status) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if err := status.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&ItemDTO{}).
		Where("id = ?", id.Bytes()).
		Update("status", int(status))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order item", id.String())
	}

	return nil
}

// ListStatusesForOrder returns the statuses of all line items of an order.
func (r *GormOrderItemRepository) ListStatusesForOrder(
	ctx context.Context, orderID kernel.UUID,
) ([]item.Status, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var raw []int
	err := r.db.WithContext(ctx).
		Model(&ItemDTO{}).
		Where("order_id = ?", orderID.Bytes()).
		Pluck("status", &raw).Error
	if err != nil {
		return nil, err
	}

	statuses := make([]item.Status, 0, len(raw))
	for _, s := range raw {
		statuses = append(statuses, item.Status(s))
	}

	return statuses, nil
}

// RemoveAllForOrder hard-deletes every line item of an order.
// Deleting zero rows is not an error: an order may legitimately be removed
// right after its items already were.
func (r *GormOrderItemRepository) RemoveAllForOrder(ctx context.Context, orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&ItemDTO{}, "order_id = ?", orderID.Bytes()).Error
}
