package commands_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"dispatch/internal/adapters/out/inmemory"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/keylock"
)

type uowFactory struct{ f ports.UnitOfWorkFactory }

func (a uowFactory) Create() commands.UoW { return a.f.Create() }

type driverUoWFactory struct{ f ports.UnitOfWorkFactory }

func (a driverUoWFactory) Create() commands.DriverUoW { return a.f.Create() }

// harness wires handlers over an in-memory store with shared locks, the way
// the composition root does.
type harness struct {
	store       *inmemory.Store
	factory     *inmemory.UnitOfWorkFactory
	orderLocks  *keylock.Locker
	driverLocks *keylock.Locker
	advance     commands.AdvanceStatusCommandHandler
	dispatch    commands.DispatchOrderCommandHandler
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	store := inmemory.NewStore()
	factory := inmemory.NewUnitOfWorkFactory(store, nil, slog.New(slog.DiscardHandler))
	h := &harness{
		store:       store,
		factory:     factory,
		orderLocks:  keylock.New(),
		driverLocks: keylock.New(),
	}
	h.advance = commands.NewAdvanceStatusCommandHandler(uowFactory{factory}, h.orderLocks, h.driverLocks, clock)
	h.dispatch = commands.NewDispatchOrderCommandHandler(uowFactory{factory}, h.orderLocks, h.driverLocks, clock)
	return h
}

func (h *harness) save(t *testing.T, orders []*order.Order, drivers []*driver.Driver) {
	t.Helper()
	ctx := context.Background()
	uow := h.factory.Create()
	require.NoError(t, uow.Begin(ctx))
	for _, o := range orders {
		require.NoError(t, uow.OrderRepository().Add(ctx, o))
	}
	for _, d := range drivers {
		require.NoError(t, uow.DriverRepository().Add(ctx, d))
	}
	require.NoError(t, uow.Commit(ctx))
}

func (h *harness) order(t *testing.T, o *order.Order) *order.Order {
	t.Helper()
	loaded, err := h.factory.Create().OrderRepository().Get(context.Background(), o.ID())
	require.NoError(t, err)
	return loaded
}

func (h *harness) driver(t *testing.T, d *driver.Driver) *driver.Driver {
	t.Helper()
	loaded, err := h.factory.Create().DriverRepository().Get(context.Background(), d.ID())
	require.NoError(t, err)
	return loaded
}

func advanceCommand(t *testing.T, o *order.Order, target order.Status, actor order.Actor) commands.AdvanceStatusCommand {
	t.Helper()
	cmd, err := commands.NewAdvanceStatusCommand(o.ID(), target, actor, "", "")
	require.NoError(t, err)
	return cmd
}
