package commands

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/keylock"
)

// AdvanceStatusResult is the order after the request plus the dispatch
// outcome. DispatchPending is a normal result, not an error.
type AdvanceStatusResult struct {
	Order    *order.Order
	Dispatch DispatchOutcome
}

// AdvanceStatusCommandHandler applies a transition and runs the follow-up
// work it implies.
//
// Business flow:
//   - Transitions on one order are serialized in-process by a keyed lock and
//     across processes by the repository version check
//   - Reaching ready triggers a dispatch attempt in a second unit of work
//   - Requesting assigned on a ready order is a manual dispatch retry
//   - Delivered or cancelled releases the attached driver in the same unit of work
//
// When the transition commits but the follow-up dispatch fails, the result
// still carries the ready order alongside the error.
type AdvanceStatusCommandHandler struct {
	uowFactory UoWFactory
	orderLocks *keylock.Locker
	clock      ports.Clock
	dispatcher dispatcher
	matcher    services.DispatchMatcher
}

func NewAdvanceStatusCommandHandler(
	uowFactory UoWFactory,
	orderLocks, driverLocks *keylock.Locker,
	clock ports.Clock,
) AdvanceStatusCommandHandler {
	return AdvanceStatusCommandHandler{
		uowFactory: uowFactory,
		orderLocks: orderLocks,
		clock:      clock,
		dispatcher: newDispatcher(uowFactory, driverLocks, clock),
		matcher:    services.NewDispatchMatcher(),
	}
}

func (h AdvanceStatusCommandHandler) Handle(ctx context.Context, command AdvanceStatusCommand) (AdvanceStatusResult, error) {
	if err := command.Validate(); err != nil {
		return AdvanceStatusResult{}, err
	}

	unlock := h.orderLocks.Lock(command.OrderID().String())
	defer unlock()

	o, manualDispatch, err := h.transition(ctx, command)
	if err != nil {
		return AdvanceStatusResult{}, err
	}
	if !manualDispatch && o.Status() != order.Ready {
		return AdvanceStatusResult{Order: o, Dispatch: DispatchNotAttempted}, nil
	}

	// The follow-up to reaching ready is performed by the system; a manual
	// retry is credited to whoever asked for it.
	actor := order.SystemActor()
	if manualDispatch {
		actor = command.Actor()
	}

	dispatched, outcome, err := h.dispatcher.attempt(ctx, o.ID(), actor)
	if err != nil {
		return AdvanceStatusResult{Order: o, Dispatch: DispatchPending}, err
	}
	return AdvanceStatusResult{Order: dispatched, Dispatch: outcome}, nil
}

// transition commits the requested move, or reports a manual dispatch retry
// when assigned is requested on a ready order.
func (h AdvanceStatusCommandHandler) transition(
	ctx context.Context,
	command AdvanceStatusCommand,
) (*order.Order, bool, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return nil, false, err
	}

	if command.Target() == order.Assigned && o.Status() == order.Ready && o.DriverID() == nil {
		return o, true, nil
	}

	if _, err = o.Transition(command.Target(), command.Actor(), command.Location(), command.Notes(), h.clock.Now()); err != nil {
		return nil, false, err
	}

	if err = h.releaseDriver(ctx, uow.DriverRepository(), o); err != nil {
		return nil, false, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, false, err
	}

	return o, false, nil
}

// releaseDriver frees the driver of a delivered or cancelled order. The
// driver reference is weak: a missing driver, or one already busy with
// another order, is left alone.
func (h AdvanceStatusCommandHandler) releaseDriver(ctx context.Context, repo ports.DriverRepository, o *order.Order) error {
	if !o.Status().IsTerminal() || o.DriverID() == nil {
		return nil
	}

	unlock := h.dispatcher.driverLocks.Lock(o.DriverID().String())
	defer unlock()

	d, err := repo.Get(ctx, *o.DriverID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if current := d.CurrentOrderID(); current == nil || !current.IsEqual(o.ID()) {
		return nil
	}

	if err = h.matcher.Release(d, o.Status() == order.Delivered); err != nil {
		return err
	}
	return repo.Update(ctx, d)
}
