package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/guard"
)

var ErrAdvanceStatusCommandIsNotConstructed = errors.New(
	"AdvanceStatusCommand must be created via NewAdvanceStatusCommand constructor",
)

// AdvanceStatusCommand requests one lifecycle transition on behalf of an
// actor. Location and notes are optional free text.
type AdvanceStatusCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	target   order.Status
	actor    order.Actor
	location string
	notes    string

	guard guard.ConstructorGuard
}

// NewAdvanceStatusCommand checks the inputs are well formed. Whether the
// transition is legal is decided against the stored order.
func NewAdvanceStatusCommand(
	orderID kernel.UUID,
	target order.Status,
	actor order.Actor,
	location, notes string,
) (AdvanceStatusCommand, error) {
	cmd := AdvanceStatusCommand{
		target:   target,
		location: location,
		notes:    notes,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		target.Validate(),
		cmd.setActor(actor),
	); err != nil {
		return AdvanceStatusCommand{}, err
	}

	return cmd, nil
}

func (c AdvanceStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceStatusCommandIsNotConstructed)
}

func (c AdvanceStatusCommand) OrderID() kernel.UUID { return c.orderID }
func (c AdvanceStatusCommand) Target() order.Status { return c.target }
func (c AdvanceStatusCommand) Actor() order.Actor   { return c.actor }
func (c AdvanceStatusCommand) Location() string     { return c.location }
func (c AdvanceStatusCommand) Notes() string        { return c.notes }

func (c *AdvanceStatusCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *AdvanceStatusCommand) setActor(actor order.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
