package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrDispatchOrderCommandIsNotConstructed = errors.New(
	"DispatchOrderCommand must be created via NewDispatchOrderCommand constructor",
)

// DispatchOrderCommand retries driver assignment for an order left in ready.
type DispatchOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDispatchOrderCommand(orderID kernel.UUID) (DispatchOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return DispatchOrderCommand{}, err
	}
	return DispatchOrderCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c DispatchOrderCommand) Validate() error {
	return c.guard.Validate(ErrDispatchOrderCommandIsNotConstructed)
}

func (c DispatchOrderCommand) OrderID() kernel.UUID { return c.orderID }
