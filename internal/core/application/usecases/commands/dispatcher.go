package commands

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/keylock"
)

// DispatchOutcome tells the caller what happened to driver assignment.
type DispatchOutcome int

const (
	// DispatchNotAttempted means the order did not reach ready.
	DispatchNotAttempted DispatchOutcome = iota
	// DispatchAssigned means a driver was assigned and the order is assigned.
	DispatchAssigned
	// DispatchPending means no driver was available; the order stays ready.
	DispatchPending
)

func (o DispatchOutcome) String() string {
	switch o {
	case DispatchAssigned:
		return "assigned"
	case DispatchPending:
		return "pending_dispatch"
	case DispatchNotAttempted:
	}
	return "not_attempted"
}

// dispatcher runs one assignment attempt for a ready order in its own unit
// of work. Selection is read-only; the chosen driver is then locked,
// reloaded and re-checked before the assignment is written.
type dispatcher struct {
	uowFactory  UoWFactory
	driverLocks *keylock.Locker
	clock       ports.Clock
	matcher     services.DispatchMatcher
}

func newDispatcher(uowFactory UoWFactory, driverLocks *keylock.Locker, clock ports.Clock) dispatcher {
	return dispatcher{
		uowFactory:  uowFactory,
		driverLocks: driverLocks,
		clock:       clock,
		matcher:     services.NewDispatchMatcher(),
	}
}

// attempt returns the order as stored after the attempt. A lost race yields
// a DriverNotAvailableError and leaves the order ready.
func (d dispatcher) attempt(
	ctx context.Context,
	orderID kernel.UUID,
	actor order.Actor,
) (*order.Order, DispatchOutcome, error) {
	uow := d.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, DispatchNotAttempted, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	driverRepo := uow.DriverRepository()

	o, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return nil, DispatchNotAttempted, err
	}
	if o.Status() != order.Ready || o.DriverID() != nil {
		return o, DispatchNotAttempted, order.NewIllegalTransitionError(o.Status(), order.Assigned, "order is not waiting for a driver")
	}

	pool, err := driverRepo.ListAvailable(ctx, o.ClientScope())
	if err != nil {
		return nil, DispatchNotAttempted, err
	}

	candidate, ok := d.matcher.FindNearest(o.CustomerLocation(), pool)
	if !ok {
		return o, DispatchPending, nil
	}

	unlock := d.driverLocks.Lock(candidate.ID().String())
	defer unlock()

	fresh, err := driverRepo.Get(ctx, candidate.ID())
	if err != nil {
		return nil, DispatchNotAttempted, err
	}

	if err = d.matcher.Assign(o, fresh); err != nil {
		return nil, DispatchNotAttempted, err
	}

	if _, err = o.Transition(order.Assigned, actor, "", "driver assigned", d.clock.Now()); err != nil {
		return nil, DispatchNotAttempted, err
	}

	if err = driverRepo.Update(ctx, fresh); err != nil {
		return nil, DispatchNotAttempted, lostDriver(fresh.ID(), err)
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, DispatchNotAttempted, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, DispatchNotAttempted, lostDriver(fresh.ID(), err)
	}

	return o, DispatchAssigned, nil
}

// lostDriver reports a driver version conflict as the driver being taken.
func lostDriver(id kernel.UUID, err error) error {
	var conflict *ports.ConcurrentModificationError
	if errors.As(err, &conflict) && conflict.Aggregate == ports.AggregateDriver {
		return errors.Join(driver.NewDriverNotAvailableError(id, driver.AvailabilityUnknown), err)
	}
	return err
}
