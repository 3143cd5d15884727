// Package postgres provides the GORM implementation of the Unit of Work.
// A unit of work wraps one database transaction shared by the order,
// driver and restaurant repositories, tracks every aggregate they save and,
// once the transaction commits, publishes the domain events those aggregates
// recorded.
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.OrderRepository().Update(ctx, o); err != nil {
//	    return err
//	}
//	if err := uow.DriverRepository().Update(ctx, d); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Without Begin, repositories run directly on the connection pool, which is
// how queries read.
//
// Concurrency: each UnitOfWork is used by one goroutine. Conflicting writers
// are detected by the version column, not by row locks.
package postgres

import (
	"context"
	"log/slog"

	"dispatch/internal/adapters/out/postgres/driverrepo"
	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/adapters/out/postgres/restaurantrepo"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate is an aggregate saved during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// eventSource is implemented by aggregates that record domain events.
type eventSource interface {
	PullEvents() []order.StatusChanged
}

// GormUnitOfWorkFactory creates UnitOfWork instances over one connection
// pool.
type GormUnitOfWorkFactory struct {
	db        *gorm.DB
	publisher ports.EventPublisher
	logger    *slog.Logger
}

// NewGormUnitOfWorkFactory wires the pool and an optional publisher. With a
// nil publisher events are dropped after commit.
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    log.Fatalf("failed to connect database: %v", err)
//	}
//	factory := NewGormUnitOfWorkFactory(db, publisher, logger)
func NewGormUnitOfWorkFactory(db *gorm.DB, publisher ports.EventPublisher, logger *slog.Logger) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{
		db:        db,
		publisher: publisher,
		logger:    logger.With("component", "postgres_uow"),
	}
}

// Create produces a fresh unit of work with its own transaction state and
// aggregate tracking.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		publisher:         f.publisher,
		logger:            f.logger,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and the aggregates
// saved in it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	publisher         ports.EventPublisher
	logger            *slog.Logger
	trackedAggregates []trackedAggregate
}

// Begin starts a transaction. Calling it again on an active unit of work is
// a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit commits the transaction, then publishes the events of every tracked
// aggregate. A publish failure is logged; the commit stands.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	tracked := uow.trackedAggregates
	uow.trackedAggregates = make([]trackedAggregate, 0)
	if err != nil {
		return err
	}

	uow.publish(ctx, tracked)
	return nil
}

// Rollback discards the transaction and forgets tracked aggregates.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = make([]trackedAggregate, 0)
	return err
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) DriverRepository() ports.DriverRepository {
	return driverrepo.NewGormDriverRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) RestaurantRepository() ports.RestaurantRepository {
	return restaurantrepo.NewGormRestaurantRepository(uow.conn())
}

// TrackAggregate registers an aggregate saved within this unit of work.
// Repositories call it after a successful write.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) publish(ctx context.Context, tracked []trackedAggregate) {
	var events []order.StatusChanged
	for _, t := range tracked {
		if source, ok := t.Aggregate.(eventSource); ok {
			events = append(events, source.PullEvents()...)
		}
	}
	if len(events) == 0 || uow.publisher == nil {
		return
	}

	if err := uow.publisher.Publish(ctx, events...); err != nil {
		uow.logger.ErrorContext(ctx, "failed to publish order events", "count", len(events), "error", err)
	}
}
