package commands

import (
	"context"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/keylock"
)

// DispatchOrderCommandHandler runs one dispatch attempt on behalf of the
// system. It shares the order and driver locks with
// AdvanceStatusCommandHandler, so a retry never overlaps a transition on the
// same order.
type DispatchOrderCommandHandler struct {
	orderLocks *keylock.Locker
	dispatcher dispatcher
}

func NewDispatchOrderCommandHandler(
	uowFactory UoWFactory,
	orderLocks, driverLocks *keylock.Locker,
	clock ports.Clock,
) DispatchOrderCommandHandler {
	return DispatchOrderCommandHandler{
		orderLocks: orderLocks,
		dispatcher: newDispatcher(uowFactory, driverLocks, clock),
	}
}

// Handle returns DispatchPending when no driver is available, and an
// IllegalTransitionError when the order is no longer waiting for a driver.
func (h DispatchOrderCommandHandler) Handle(ctx context.Context, command DispatchOrderCommand) (AdvanceStatusResult, error) {
	if err := command.Validate(); err != nil {
		return AdvanceStatusResult{}, err
	}

	unlock := h.orderLocks.Lock(command.OrderID().String())
	defer unlock()

	o, outcome, err := h.dispatcher.attempt(ctx, command.OrderID(), order.SystemActor())
	if err != nil {
		return AdvanceStatusResult{}, err
	}
	return AdvanceStatusResult{Order: o, Dispatch: outcome}, nil
}
