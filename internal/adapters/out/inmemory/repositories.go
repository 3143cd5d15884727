package inmemory

import (
	"context"
	"slices"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// OrderRepository reads staged state first, then committed state.
type OrderRepository struct {
	uow *UnitOfWork
}

func (r *OrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.stage(aggregate, true)
}

func (r *OrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.stage(aggregate, false)
}

func (r *OrderRepository) stage(aggregate *order.Order, isNew bool) error {
	u := r.uow
	u.mu.Lock()
	defer u.mu.Unlock()
	if !u.active {
		return ErrTransactionNotStarted
	}

	key := aggregate.ID().String()
	expected := aggregate.PersistedVersion()
	if prev, ok := u.orders[key]; ok {
		// A second write in the same unit of work keeps the original expectation.
		expected, isNew = prev.expected, prev.isNew
	} else if !isNew {
		u.store.mu.RLock()
		stored, ok := u.store.orders[key]
		u.store.mu.RUnlock()
		if !ok || stored.Version != expected {
			return ports.NewConcurrentModificationError(ports.AggregateOrder, key, expected)
		}
	}

	u.orders[key] = stagedOrder{state: orderState(aggregate), expected: expected, isNew: isNew}
	u.tracked = append(u.tracked, aggregate)
	aggregate.MarkPersisted()
	return nil
}

func (r *OrderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	key := id.String()

	u := r.uow
	u.mu.Lock()
	staged, ok := u.orders[key]
	u.mu.Unlock()
	if ok {
		return order.RestoreOrder(cloneOrderState(staged.state))
	}

	u.store.mu.RLock()
	state, ok := u.store.orders[key]
	u.store.mu.RUnlock()
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", key)
	}
	return order.RestoreOrder(cloneOrderState(state))
}

func (r *OrderRepository) ListReady(_ context.Context, limit int) ([]*order.Order, error) {
	u := r.uow
	u.store.mu.RLock()
	var states []order.State
	for _, s := range u.store.orders {
		if s.Status == order.Ready && s.DriverID == nil {
			states = append(states, cloneOrderState(s))
		}
	}
	u.store.mu.RUnlock()

	slices.SortFunc(states, func(a, b order.State) int {
		return a.UpdatedAt.Compare(b.UpdatedAt)
	})
	if limit > 0 && len(states) > limit {
		states = states[:limit]
	}

	orders := make([]*order.Order, 0, len(states))
	for _, s := range states {
		o, err := order.RestoreOrder(s)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// DriverRepository mirrors OrderRepository for drivers.
type DriverRepository struct {
	uow *UnitOfWork
}

func (r *DriverRepository) Add(_ context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.stage(aggregate, true)
}

func (r *DriverRepository) Update(_ context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.stage(aggregate, false)
}

func (r *DriverRepository) stage(aggregate *driver.Driver, isNew bool) error {
	u := r.uow
	u.mu.Lock()
	defer u.mu.Unlock()
	if !u.active {
		return ErrTransactionNotStarted
	}

	key := aggregate.ID().String()
	expected := aggregate.PersistedVersion()
	if prev, ok := u.drivers[key]; ok {
		expected, isNew = prev.expected, prev.isNew
	} else if !isNew {
		u.store.mu.RLock()
		stored, ok := u.store.drivers[key]
		u.store.mu.RUnlock()
		if !ok || stored.Version != expected {
			return ports.NewConcurrentModificationError(ports.AggregateDriver, key, expected)
		}
	}

	u.drivers[key] = stagedDriver{state: driverState(aggregate), expected: expected, isNew: isNew}
	aggregate.MarkPersisted()
	return nil
}

func (r *DriverRepository) Get(_ context.Context, id kernel.UUID) (*driver.Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	key := id.String()

	u := r.uow
	u.mu.Lock()
	staged, ok := u.drivers[key]
	u.mu.Unlock()
	if ok {
		return driver.RestoreDriver(staged.state)
	}

	u.store.mu.RLock()
	state, ok := u.store.drivers[key]
	u.store.mu.RUnlock()
	if !ok {
		return nil, errs.NewObjectNotFoundError("driver", key)
	}
	return driver.RestoreDriver(state)
}

func (r *DriverRepository) ListAvailable(_ context.Context, clientScope string) ([]*driver.Driver, error) {
	u := r.uow
	u.store.mu.RLock()
	var states []driver.State
	for _, s := range u.store.drivers {
		if s.Availability == driver.Available && (clientScope == "" || s.ClientScope == clientScope) {
			states = append(states, s)
		}
	}
	u.store.mu.RUnlock()

	drivers := make([]*driver.Driver, 0, len(states))
	for _, s := range states {
		d, err := driver.RestoreDriver(s)
		if err != nil {
			return nil, err
		}
		drivers = append(drivers, d)
	}
	slices.SortFunc(drivers, func(a, b *driver.Driver) int {
		return a.ID().Compare(b.ID())
	})
	return drivers, nil
}

// RestaurantRepository reads and replaces restaurant terms. Terms are
// reference data and are written to the store immediately.
type RestaurantRepository struct {
	store *Store
}

func (r *RestaurantRepository) Save(_ context.Context, terms ports.RestaurantTerms) error {
	if err := terms.RestaurantID.Validate(); err != nil {
		return err
	}
	r.store.PutRestaurant(terms)
	return nil
}

func (r *RestaurantRepository) Get(_ context.Context, id kernel.UUID) (ports.RestaurantTerms, error) {
	if err := id.Validate(); err != nil {
		return ports.RestaurantTerms{}, err
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	terms, ok := r.store.restaurants[id.String()]
	if !ok {
		return ports.RestaurantTerms{}, errs.NewObjectNotFoundError("restaurant", id.String())
	}
	return terms, nil
}
