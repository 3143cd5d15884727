package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ListReady(ctx context.Context, limit int) ([]*order.Order, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockDriverRepository struct{ mock.Mock }

func (m *MockDriverRepository) Add(ctx context.Context, d *driver.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDriverRepository) Update(ctx context.Context, d *driver.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

func (m *MockDriverRepository) ListAvailable(ctx context.Context, clientScope string) ([]*driver.Driver, error) {
	args := m.Called(ctx, clientScope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*driver.Driver), args.Error(1)
}

type MockRestaurantRepository struct{ mock.Mock }

func (m *MockRestaurantRepository) Get(ctx context.Context, id kernel.UUID) (ports.RestaurantTerms, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(ports.RestaurantTerms), args.Error(1)
}

func (m *MockRestaurantRepository) Save(ctx context.Context, terms ports.RestaurantTerms) error {
	args := m.Called(ctx, terms)
	return args.Error(0)
}

// MockUoW satisfies every narrowed unit of work view.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) DriverRepository() ports.DriverRepository {
	args := m.Called()
	return args.Get(0).(ports.DriverRepository)
}

func (m *MockUoW) RestaurantRepository() ports.RestaurantRepository {
	args := m.Called()
	return args.Get(0).(ports.RestaurantRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockPlaceOrderUoWFactory struct{ mock.Mock }

func (m *MockPlaceOrderUoWFactory) Create() commands.PlaceOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.PlaceOrderUoW)
}

type MockRestaurantUoWFactory struct{ mock.Mock }

func (m *MockRestaurantUoWFactory) Create() commands.RestaurantUoW {
	args := m.Called()
	return args.Get(0).(commands.RestaurantUoW)
}

type MockDriverUoWFactory struct{ mock.Mock }

func (m *MockDriverUoWFactory) Create() commands.DriverUoW {
	args := m.Called()
	return args.Get(0).(commands.DriverUoW)
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

var (
	now        = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	clock      = fixedClock{now: now}
	restaurant = order.Actor{Kind: order.ActorRestaurant, ID: "restaurant-1"}
	rider      = order.Actor{Kind: order.ActorDriver, ID: "driver-1"}
)

func mustLocation(t *testing.T, lat, lon float64) kernel.Location {
	t.Helper()
	l, err := kernel.NewLocation(lat, lon)
	require.NoError(t, err)
	return l
}

// storedOrder builds an order as a repository would return it.
func storedOrder(t *testing.T, scope string, location *kernel.Location) *order.Order {
	t.Helper()
	unit := kernel.MoneyFromInt(100)
	li, err := order.NewLineItem(kernel.NewUUID(), kernel.NewUUID(), "empanada", unit, 2, decimal.Zero, "")
	require.NoError(t, err)
	b, err := order.NewBreakdown(li.Subtotal(), kernel.Zero(), kernel.Zero(), kernel.Zero(), kernel.Zero())
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), order.Placement{
		CustomerID:       kernel.NewUUID(),
		RestaurantID:     kernel.NewUUID(),
		ClientScope:      scope,
		LineItems:        []order.LineItem{li},
		Breakdown:        b,
		PaymentMethod:    "cash",
		CustomerLocation: location,
	}, order.Actor{Kind: order.ActorCustomer, ID: "customer-1"}, now.Add(-time.Hour))
	require.NoError(t, err)
	o.PullEvents()
	o.MarkPersisted()
	return o
}

func walk(t *testing.T, o *order.Order, statuses ...order.Status) {
	t.Helper()
	for _, s := range statuses {
		_, err := o.Transition(s, restaurant, "", "", now.Add(-30*time.Minute))
		require.NoError(t, err)
	}
	o.PullEvents()
	o.MarkPersisted()
}

func onlineDriver(t *testing.T, scope string, at kernel.Location) *driver.Driver {
	t.Helper()
	d, err := driver.NewDriver(kernel.NewUUID(), "Ana", "+5491100000000", driver.Motorcycle, scope)
	require.NoError(t, err)
	require.NoError(t, d.UpdateLocation(at))
	require.NoError(t, d.GoOnline())
	d.MarkPersisted()
	return d
}
