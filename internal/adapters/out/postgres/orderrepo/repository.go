package orderrepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the order with its line items and tracking records.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	aggregate.MarkPersisted()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the order row only if the stored version is the one the
// aggregate was loaded at, then appends tracking records not yet stored.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.PersistedVersion()).
		Select("*").
		Omit(clause.Associations, "id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return r.missingOrStale(ctx, aggregate)
	}

	if len(dto.Records) > 0 {
		err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&dto.Records).Error
		if err != nil {
			return err
		}
	}

	aggregate.MarkPersisted()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormOrderRepository) missingOrStale(ctx context.Context, aggregate *order.Order) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", aggregate.ID().Bytes()).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}
	return ports.NewConcurrentModificationError(ports.AggregateOrder, aggregate.ID().String(), aggregate.PersistedVersion())
}

// Get loads an order with its children.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.withChildren(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ListReady returns ready orders without a driver, longest waiting first.
func (r *GormOrderRepository) ListReady(ctx context.Context, limit int) ([]*order.Order, error) {
	query := r.withChildren(ctx).
		Where("status = ? AND driver_id IS NULL", int(order.Ready)).
		Order("updated_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var dtos []OrderDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func (r *GormOrderRepository) withChildren(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("LineItems", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Records", func(db *gorm.DB) *gorm.DB { return db.Order("sequence ASC") })
}
