package inmemory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

func TestOrderRepository_GetReturnsDetachedCopies(t *testing.T) {
	ctx := context.Background()
	_, f, _ := newFactory(t)
	o := newOrder(t, placedAt)
	commitOrder(t, f, o)

	a, err := f.Create().OrderRepository().Get(ctx, o.ID())
	require.NoError(t, err)
	_, err = a.Transition(order.Accepted, order.SystemActor(), "", "", placedAt)
	require.NoError(t, err)

	b, err := f.Create().OrderRepository().Get(ctx, o.ID())
	require.NoError(t, err)
	assert.Equal(t, order.Pending, b.Status())
	assert.Len(t, b.History(), 1)
}

func TestOrderRepository_GetInvalidID(t *testing.T) {
	_, f, _ := newFactory(t)
	_, err := f.Create().OrderRepository().Get(context.Background(), kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestOrderRepository_ListReady(t *testing.T) {
	ctx := context.Background()
	_, f, _ := newFactory(t)

	late := newOrder(t, placedAt)
	toReady(t, late, placedAt.Add(2*time.Minute))
	early := newOrder(t, placedAt)
	toReady(t, early, placedAt.Add(time.Minute))
	pending := newOrder(t, placedAt)

	for _, o := range []*order.Order{late, early, pending} {
		commitOrder(t, f, o)
	}

	ready, err := f.Create().OrderRepository().ListReady(ctx, 10)
	require.NoError(t, err)
	require.Len(t, ready, 2)
	assert.True(t, ready[0].ID().IsEqual(early.ID()))
	assert.True(t, ready[1].ID().IsEqual(late.ID()))

	limited, err := f.Create().OrderRepository().ListReady(ctx, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.True(t, limited[0].ID().IsEqual(early.ID()))
}

func TestDriverRepository_ListAvailable(t *testing.T) {
	ctx := context.Background()
	_, f, _ := newFactory(t)

	caba := newOnlineDriver(t, "caba")
	rosario := newOnlineDriver(t, "rosario")
	offline, err := driver.NewDriver(kernel.NewUUID(), "Luis", "+5491100000001", driver.Bicycle, "caba")
	require.NoError(t, err)

	uow := f.Create()
	require.NoError(t, uow.Begin(ctx))
	for _, d := range []*driver.Driver{caba, rosario, offline} {
		require.NoError(t, uow.DriverRepository().Add(ctx, d))
	}
	require.NoError(t, uow.Commit(ctx))

	scoped, err := f.Create().DriverRepository().ListAvailable(ctx, "caba")
	require.NoError(t, err)
	require.Len(t, scoped, 1)
	assert.True(t, scoped[0].ID().IsEqual(caba.ID()))

	all, err := f.Create().DriverRepository().ListAvailable(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestDriverRepository_StaleUpdate(t *testing.T) {
	ctx := context.Background()
	_, f, _ := newFactory(t)
	d := newOnlineDriver(t, "caba")

	uow := f.Create()
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.DriverRepository().Add(ctx, d))
	require.NoError(t, uow.Commit(ctx))

	a, err := f.Create().DriverRepository().Get(ctx, d.ID())
	require.NoError(t, err)
	b, err := f.Create().DriverRepository().Get(ctx, d.ID())
	require.NoError(t, err)

	require.NoError(t, a.MarkBusy(kernel.NewUUID()))
	require.NoError(t, b.MarkBusy(kernel.NewUUID()))

	uowA := f.Create()
	require.NoError(t, uowA.Begin(ctx))
	require.NoError(t, uowA.DriverRepository().Update(ctx, a))
	require.NoError(t, uowA.Commit(ctx))

	uowB := f.Create()
	require.NoError(t, uowB.Begin(ctx))
	require.ErrorIs(t, uowB.DriverRepository().Update(ctx, b), ports.ErrConcurrentModification)
}

func TestRestaurantRepository_Get(t *testing.T) {
	ctx := context.Background()
	store, f, _ := newFactory(t)
	minimum := kernel.MoneyFromInt(50)
	terms := ports.RestaurantTerms{
		RestaurantID: kernel.NewUUID(),
		Name:         "La Parrilla",
		MinimumOrder: &minimum,
		ClientScope:  "caba",
		Zone:         2,
	}
	store.PutRestaurant(terms)

	got, err := f.Create().RestaurantRepository().Get(ctx, terms.RestaurantID)
	require.NoError(t, err)
	assert.Equal(t, terms, got)

	_, err = f.Create().RestaurantRepository().Get(ctx, kernel.NewUUID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
