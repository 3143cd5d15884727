package orderrepo

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

func newTestOrder(t *testing.T, location *kernel.Location) *order.Order {
	t.Helper()
	unit, err := kernel.ParseMoney("12.50")
	require.NoError(t, err)
	li, err := order.NewLineItem(kernel.NewUUID(), kernel.NewUUID(), "choripan", unit, 4, decimal.RequireFromString("0.300"), "sin chimi")
	require.NoError(t, err)
	b, err := order.NewBreakdown(li.Subtotal(), kernel.MoneyFromInt(3), kernel.Zero(), kernel.MoneyFromInt(5), kernel.MoneyFromInt(1))
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), order.Placement{
		CustomerID:          kernel.NewUUID(),
		RestaurantID:        kernel.NewUUID(),
		ClientScope:         "caba",
		LineItems:           []order.LineItem{li},
		Breakdown:           b,
		PaymentMethod:       "card",
		PaymentStatus:       "paid",
		SpecialInstructions: "ring twice",
		CustomerLocation:    location,
	}, order.Actor{Kind: order.ActorCustomer, ID: "c-1"}, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return o
}

func TestDTO_PreservesAggregate(t *testing.T) {
	loc, err := kernel.NewLocation(-34.6, -58.4)
	require.NoError(t, err)
	o := newTestOrder(t, &loc)

	at := o.CreatedAt()
	actor := order.Actor{Kind: order.ActorRestaurant, ID: "r-1"}
	for _, s := range []order.Status{order.Accepted, order.Preparing, order.Ready} {
		at = at.Add(time.Minute)
		_, err = o.Transition(s, actor, "kitchen", "", at)
		require.NoError(t, err)
	}
	driverID := kernel.NewUUID()
	require.NoError(t, o.AttachDriver(driverID))
	_, err = o.Transition(order.Assigned, order.SystemActor(), "", "driver assigned", at.Add(time.Minute))
	require.NoError(t, err)

	restored, err := toDomain(fromDomain(o))

	require.NoError(t, err)
	assert.True(t, restored.IsEqual(o))
	assert.Equal(t, order.Assigned, restored.Status())
	assert.True(t, restored.DriverID().IsEqual(driverID))
	assert.Equal(t, o.Version(), restored.Version())
	assert.Equal(t, o.Breakdown().Total().String(), restored.Breakdown().Total().String())
	require.Len(t, restored.History(), 5)
	assert.Equal(t, "driver assigned", restored.History()[0].Notes())
	assert.Equal(t, order.SystemActor(), restored.History()[0].Actor())
	require.NotNil(t, restored.CustomerLocation())
	assert.InDelta(t, -34.6, restored.CustomerLocation().Latitude(), 1e-9)
	assert.Equal(t, "sin chimi", restored.LineItems()[0].Note())
	assert.True(t, restored.LineItems()[0].WeightKg().Equal(decimal.RequireFromString("0.3")))
}

func TestDTO_AbsentLocation(t *testing.T) {
	o := newTestOrder(t, nil)

	dto := fromDomain(o)
	assert.Nil(t, dto.CustomerLocation.Latitude)
	assert.Nil(t, dto.DriverID)

	restored, err := toDomain(dto)
	require.NoError(t, err)
	assert.Nil(t, restored.CustomerLocation())
}

func TestDTO_RejectsStatusWithoutMatchingRecord(t *testing.T) {
	dto := fromDomain(newTestOrder(t, nil))
	dto.Status = int(order.Delivered)

	_, err := toDomain(dto)
	require.Error(t, err)
}

func TestDTO_RejectsInconsistentTotal(t *testing.T) {
	dto := fromDomain(newTestOrder(t, nil))
	dto.Total = dto.Total.Add(decimal.NewFromInt(1))

	_, err := toDomain(dto)
	require.Error(t, err)
}
