package inmemory

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
)

var (
	ErrTransactionNotStarted = errors.New("transaction is not started")
	ErrDuplicateAggregate    = errors.New("aggregate already exists")
)

// UnitOfWorkFactory creates units of work over a shared Store.
type UnitOfWorkFactory struct {
	store     *Store
	publisher ports.EventPublisher
	logger    *slog.Logger
}

// NewUnitOfWorkFactory wires a store and an optional publisher. A nil
// publisher drops events.
func NewUnitOfWorkFactory(store *Store, publisher ports.EventPublisher, logger *slog.Logger) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{
		store:     store,
		publisher: publisher,
		logger:    logger.With("component", "inmemory_uow"),
	}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store, publisher: f.publisher, logger: f.logger}
}

type stagedOrder struct {
	state    order.State
	expected int
	isNew    bool
}

type stagedDriver struct {
	state    driver.State
	expected int
	isNew    bool
}

// UnitOfWork stages writes until Commit. Without Begin, repositories read
// committed state and writes fail with ErrTransactionNotStarted.
type UnitOfWork struct {
	store     *Store
	publisher ports.EventPublisher
	logger    *slog.Logger

	mu      sync.Mutex
	active  bool
	orders  map[string]stagedOrder
	drivers map[string]stagedDriver
	tracked []*order.Order
}

func (u *UnitOfWork) Begin(_ context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.active {
		return nil
	}
	u.active = true
	u.orders = make(map[string]stagedOrder)
	u.drivers = make(map[string]stagedDriver)
	u.tracked = nil
	return nil
}

// Commit applies every staged write or none of them.
func (u *UnitOfWork) Commit(ctx context.Context) error {
	u.mu.Lock()
	if !u.active {
		u.mu.Unlock()
		return ErrTransactionNotStarted
	}
	err := u.apply()
	tracked := u.tracked
	u.reset()
	u.mu.Unlock()

	if err != nil {
		return err
	}

	u.publish(ctx, tracked)
	return nil
}

func (u *UnitOfWork) Rollback(_ context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if !u.active {
		return ErrTransactionNotStarted
	}
	u.reset()
	return nil
}

func (u *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{uow: u}
}

func (u *UnitOfWork) DriverRepository() ports.DriverRepository {
	return &DriverRepository{uow: u}
}

func (u *UnitOfWork) RestaurantRepository() ports.RestaurantRepository {
	return &RestaurantRepository{store: u.store}
}

func (u *UnitOfWork) reset() {
	u.active = false
	u.orders = nil
	u.drivers = nil
	u.tracked = nil
}

// apply checks all versions first, then writes. Callers hold u.mu.
func (u *UnitOfWork) apply() error {
	s := u.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, staged := range u.orders {
		if err := checkVersion(ports.AggregateOrder, key, staged.isNew, staged.expected, s.orders[key].Version, s.hasOrder(key)); err != nil {
			return err
		}
	}
	for key, staged := range u.drivers {
		if err := checkVersion(ports.AggregateDriver, key, staged.isNew, staged.expected, s.drivers[key].Version, s.hasDriver(key)); err != nil {
			return err
		}
	}

	for key, staged := range u.orders {
		s.orders[key] = staged.state
	}
	for key, staged := range u.drivers {
		s.drivers[key] = staged.state
	}
	return nil
}

func checkVersion(aggregate, key string, isNew bool, expected, stored int, exists bool) error {
	switch {
	case isNew && exists:
		return errors.Join(ErrDuplicateAggregate, errors.New(aggregate+" "+key))
	case !isNew && !exists:
		return ports.NewConcurrentModificationError(aggregate, key, expected)
	case !isNew && stored != expected:
		return ports.NewConcurrentModificationError(aggregate, key, expected)
	}
	return nil
}

func (s *Store) hasOrder(key string) bool {
	_, ok := s.orders[key]
	return ok
}

func (s *Store) hasDriver(key string) bool {
	_, ok := s.drivers[key]
	return ok
}

func (u *UnitOfWork) publish(ctx context.Context, tracked []*order.Order) {
	var events []order.StatusChanged
	for _, o := range tracked {
		events = append(events, o.PullEvents()...)
	}
	if len(events) == 0 || u.publisher == nil {
		return
	}
	if err := u.publisher.Publish(ctx, events...); err != nil {
		u.logger.ErrorContext(ctx, "failed to publish order events", "count", len(events), "error", err)
	}
}
