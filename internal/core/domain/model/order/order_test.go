package order_test

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
)

var (
	placedAt    = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	customer    = order.Actor{Kind: order.ActorCustomer, ID: "customer-1"}
	restaurant  = order.Actor{Kind: order.ActorRestaurant, ID: "restaurant-1"}
	driverActor = order.Actor{Kind: order.ActorDriver, ID: "driver-1"}
)

func newLineItem(t *testing.T, price string, qty int) order.LineItem {
	t.Helper()
	unit, err := kernel.ParseMoney(price)
	require.NoError(t, err)
	li, err := order.NewLineItem(kernel.NewUUID(), kernel.NewUUID(), "empanada", unit, qty, decimal.RequireFromString("0.25"), "")
	require.NoError(t, err)
	return li
}

func newPlacement(t *testing.T) order.Placement {
	t.Helper()
	b, err := order.NewBreakdown(
		kernel.MoneyFromInt(200), kernel.MoneyFromInt(10), kernel.MoneyFromInt(5), kernel.MoneyFromInt(42), kernel.Zero(),
	)
	require.NoError(t, err)
	loc, err := kernel.NewLocation(-34.6037, -58.3816)
	require.NoError(t, err)

	return order.Placement{
		CustomerID:       kernel.NewUUID(),
		RestaurantID:     kernel.NewUUID(),
		ClientScope:      "caba",
		LineItems:        []order.LineItem{newLineItem(t, "100", 2)},
		Breakdown:        b,
		PaymentMethod:    "cash",
		PaymentStatus:    "pending",
		CustomerLocation: &loc,
	}
}

func newOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), newPlacement(t), customer, placedAt)
	require.NoError(t, err)
	return o
}

// advanceTo walks the happy path up to target, attaching a driver when needed.
// Cancelled is reached by cancelling the pending order.
func advanceTo(t *testing.T, o *order.Order, target order.Status) {
	t.Helper()
	if target == order.Cancelled {
		_, err := o.Transition(order.Cancelled, customer, "", "", placedAt.Add(time.Minute))
		require.NoError(t, err)
		return
	}
	path := []order.Status{order.Accepted, order.Preparing, order.Ready, order.Assigned, order.OutForDelivery, order.Delivered}
	at := placedAt
	for _, s := range path {
		if o.Status() == target {
			return
		}
		if s == order.Assigned {
			require.NoError(t, o.AttachDriver(kernel.NewUUID()))
		}
		at = at.Add(time.Minute)
		_, err := o.Transition(s, restaurant, "", "", at)
		require.NoError(t, err)
	}
	require.Equal(t, target, o.Status())
}

func TestNewOrder(t *testing.T) {
	t.Run("should create pending order with initial record", func(t *testing.T) {
		p := newPlacement(t)
		id := kernel.NewUUID()

		o, err := order.NewOrder(id, p, customer, placedAt)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, order.Pending, o.CurrentState())
		assert.Nil(t, o.DriverID())
		assert.Equal(t, "cash", o.PaymentMethod())
		assert.Equal(t, "caba", o.ClientScope())
		assert.True(t, o.Breakdown().Total().Equal(kernel.MoneyFromInt(257)))
		require.NotNil(t, o.CustomerLocation())
		assert.InDelta(t, -34.6037, o.CustomerLocation().Latitude(), 1e-9)

		history := o.History()
		require.Len(t, history, 1)
		assert.Equal(t, order.Pending, history[0].Status())
		assert.Equal(t, customer, history[0].Actor())
		assert.Equal(t, 1, history[0].Sequence())
		assert.Equal(t, placedAt, history[0].At())

		events := o.PullEvents()
		require.Len(t, events, 1)
		assert.Equal(t, order.Unknown, events[0].From)
		assert.Equal(t, order.Pending, events[0].To)
		assert.Empty(t, o.PullEvents())
	})

	t.Run("should allow missing coordinates", func(t *testing.T) {
		p := newPlacement(t)
		p.CustomerLocation = nil

		o, err := order.NewOrder(kernel.NewUUID(), p, customer, placedAt)

		require.NoError(t, err)
		assert.Nil(t, o.CustomerLocation())
	})

	t.Run("should join all validation errors", func(t *testing.T) {
		p := newPlacement(t)
		p.LineItems = nil
		p.PaymentMethod = ""
		p.CustomerID = kernel.UUID{}

		o, err := order.NewOrder(kernel.UUID{}, p, order.Actor{}, placedAt)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "customer id")
		assert.ErrorIs(t, err, order.ErrLineItemsAreRequired)
		assert.ErrorIs(t, err, order.ErrPaymentMethodIsRequired)
		assert.Contains(t, err.Error(), "actor")
	})

	t.Run("zero value order is not constructed", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)

		_, err := o.Transition(order.Accepted, restaurant, "", "", placedAt)
		require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_Transition(t *testing.T) {
	t.Run("every legal transition appends exactly one matching record", func(t *testing.T) {
		for from, targets := range legalTable() {
			for _, to := range targets {
				o := newOrder(t)
				advanceTo(t, o, from)
				before := len(o.History())

				if to == order.Assigned {
					require.NoError(t, o.AttachDriver(kernel.NewUUID()))
				}
				rec, err := o.Transition(to, driverActor, "corner", "note", placedAt.Add(time.Hour))

				require.NoError(t, err, "%s -> %s", from, to)
				assert.Equal(t, to, o.Status())
				assert.Equal(t, to, rec.Status())
				assert.Len(t, o.History(), before+1)
				assert.Equal(t, rec.ID(), o.History()[0].ID())
				assert.Equal(t, "corner", rec.Location())
				assert.Equal(t, "note", rec.Notes())
			}
		}
	})

	t.Run("every illegal transition fails and leaves order unchanged", func(t *testing.T) {
		table := legalTable()
		checked := map[order.Status]int{}
		for _, from := range order.AllStatuses() {
			for _, to := range append(order.AllStatuses(), order.Unknown) {
				legal := false
				for _, allowed := range table[from] {
					legal = legal || allowed == to
				}
				if legal {
					continue
				}

				o := newOrder(t)
				advanceTo(t, o, from)
				history := o.History()
				version := o.Version()

				_, err := o.Transition(to, restaurant, "", "", placedAt.Add(time.Hour))

				var ite *order.IllegalTransitionError
				require.ErrorAs(t, err, &ite, "%s -> %s", from, to)
				checked[from]++
				assert.Equal(t, from, o.Status())
				assert.Equal(t, history, o.History())
				assert.Equal(t, version, o.Version())
			}
		}
		assert.Equal(t, 9, checked[order.Cancelled])
		assert.Equal(t, 9, checked[order.Delivered])
	})

	t.Run("preparing to assigned is rejected", func(t *testing.T) {
		o := newOrder(t)
		advanceTo(t, o, order.Preparing)

		_, err := o.Transition(order.Assigned, order.SystemActor(), "", "", placedAt.Add(time.Hour))

		require.ErrorIs(t, err, order.ErrIllegalTransition)
		assert.Equal(t, order.Preparing, o.CurrentState())
	})

	t.Run("assigned requires an attached driver", func(t *testing.T) {
		o := newOrder(t)
		advanceTo(t, o, order.Ready)

		_, err := o.Transition(order.Assigned, order.SystemActor(), "", "", placedAt.Add(time.Hour))

		var ite *order.IllegalTransitionError
		require.ErrorAs(t, err, &ite)
		assert.Equal(t, order.Ready, ite.From)
		assert.Equal(t, order.Ready, o.Status())
	})

	t.Run("cancelled keeps the driver reference", func(t *testing.T) {
		o := newOrder(t)
		advanceTo(t, o, order.Assigned)
		driverID := o.DriverID()

		_, err := o.Transition(order.Cancelled, customer, "", "changed my mind", placedAt.Add(time.Hour))

		require.NoError(t, err)
		require.NotNil(t, o.DriverID())
		assert.True(t, o.DriverID().IsEqual(*driverID))
	})

	t.Run("timestamps never go backwards", func(t *testing.T) {
		o := newOrder(t)

		rec, err := o.Transition(order.Accepted, restaurant, "", "", placedAt.Add(-time.Hour))

		require.NoError(t, err)
		assert.Equal(t, placedAt, rec.At())
		assert.Equal(t, 2, rec.Sequence())
	})

	t.Run("invalid actor is rejected", func(t *testing.T) {
		o := newOrder(t)

		_, err := o.Transition(order.Accepted, order.Actor{Kind: "robot", ID: "r2"}, "", "", placedAt)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.Pending, o.Status())
	})
}

func TestOrder_AttachDriver(t *testing.T) {
	t.Run("only ready orders accept a driver", func(t *testing.T) {
		o := newOrder(t)

		err := o.AttachDriver(kernel.NewUUID())

		require.ErrorIs(t, err, order.ErrIllegalTransition)
		assert.Nil(t, o.DriverID())
	})

	t.Run("a second driver is rejected", func(t *testing.T) {
		o := newOrder(t)
		advanceTo(t, o, order.Ready)
		first := kernel.NewUUID()
		require.NoError(t, o.AttachDriver(first))

		err := o.AttachDriver(kernel.NewUUID())

		require.True(t, errors.Is(err, errs.ErrValueIsInvalid))
		assert.True(t, o.DriverID().IsEqual(first))
	})

	t.Run("driver id must be valid", func(t *testing.T) {
		o := newOrder(t)
		advanceTo(t, o, order.Ready)

		require.ErrorIs(t, o.AttachDriver(kernel.UUID{}), kernel.ErrUUIDIsNotConstructed)
	})
}

func TestOrder_History(t *testing.T) {
	o := newOrder(t)
	advanceTo(t, o, order.Delivered)

	history := o.History()
	require.Len(t, history, 7)
	assert.Equal(t, order.Delivered, history[0].Status())
	assert.Equal(t, order.Pending, history[len(history)-1].Status())
	for i := 1; i < len(history); i++ {
		assert.False(t, history[i-1].At().Before(history[i].At()))
		assert.Greater(t, history[i-1].Sequence(), history[i].Sequence())
	}

	history[0] = history[1]
	assert.Equal(t, order.Delivered, o.History()[0].Status())
}

func TestOrder_Version(t *testing.T) {
	o := newOrder(t)
	start := o.Version()

	_, err := o.Transition(order.Accepted, restaurant, "", "", placedAt)
	require.NoError(t, err)
	require.NoError(t, o.RecordPaymentStatus("approved", placedAt))

	assert.Equal(t, start+2, o.Version())
	assert.Equal(t, 0, o.PersistedVersion())
	assert.Equal(t, "approved", o.PaymentStatus())

	o.MarkPersisted()
	assert.Equal(t, o.Version(), o.PersistedVersion())
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should round trip through state", func(t *testing.T) {
		o := newOrder(t)
		advanceTo(t, o, order.OutForDelivery)
		p := newPlacement(t)

		restored, err := order.RestoreOrder(order.State{
			ID:        o.ID(),
			Placement: p,
			DriverID:  o.DriverID(),
			Status:    o.Status(),
			Records:   o.Records(),
			CreatedAt: o.CreatedAt(),
			UpdatedAt: o.UpdatedAt(),
			Version:   o.Version(),
		})

		require.NoError(t, err)
		assert.Equal(t, o.History(), restored.History())
		assert.Equal(t, o.Version(), restored.PersistedVersion())
		assert.Empty(t, restored.PullEvents())
		assert.True(t, restored.DriverID().IsEqual(*o.DriverID()))
	})

	t.Run("should reject history that disagrees with status", func(t *testing.T) {
		o := newOrder(t)

		_, err := order.RestoreOrder(order.State{
			ID:        o.ID(),
			Placement: newPlacement(t),
			Status:    order.Accepted,
			Records:   o.Records(),
			CreatedAt: placedAt,
			UpdatedAt: placedAt,
		})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "latest record is pending")
	})

	t.Run("should reject assigned without driver", func(t *testing.T) {
		o := newOrder(t)
		advanceTo(t, o, order.Assigned)

		_, err := order.RestoreOrder(order.State{
			ID:        o.ID(),
			Placement: newPlacement(t),
			Status:    order.Assigned,
			Records:   o.Records(),
		})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewBreakdown(t *testing.T) {
	b, err := order.NewBreakdown(
		kernel.MoneyFromInt(100), kernel.MoneyFromInt(10), kernel.MoneyFromInt(5), kernel.MoneyFromInt(21), kernel.MoneyFromInt(36),
	)
	require.NoError(t, err)
	assert.True(t, b.Total().Equal(kernel.MoneyFromInt(100)))

	_, err = order.NewBreakdown(
		kernel.MoneyFromInt(10), kernel.Zero(), kernel.Zero(), kernel.Zero(), kernel.MoneyFromInt(11),
	)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = order.RestoreBreakdown(
		kernel.MoneyFromInt(10), kernel.Zero(), kernel.Zero(), kernel.Zero(), kernel.Zero(), kernel.MoneyFromInt(11),
	)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewLineItem(t *testing.T) {
	li := newLineItem(t, "12.345", 3)
	assert.Equal(t, "37.035", li.Subtotal().Decimal().String())

	_, err := order.NewLineItem(kernel.NewUUID(), kernel.NewUUID(), "x", kernel.MoneyFromInt(1), 0, decimal.Zero, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "0 is not greater than 0")

	_, err = order.NewLineItem(kernel.NewUUID(), kernel.NewUUID(), "x", kernel.MoneyFromInt(-1), 1, decimal.Zero, "")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
