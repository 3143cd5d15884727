package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrSetDriverAvailabilityCommandIsNotConstructed = errors.New(
	"SetDriverAvailabilityCommand must be created via NewSetDriverAvailabilityCommand constructor",
)

// SetDriverAvailabilityCommand takes a driver online or offline. Busy is
// never requested directly; it is set by dispatch.
type SetDriverAvailabilityCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID
	online   bool

	guard guard.ConstructorGuard
}

func NewSetDriverAvailabilityCommand(driverID kernel.UUID, online bool) (SetDriverAvailabilityCommand, error) {
	if err := driverID.Validate(); err != nil {
		return SetDriverAvailabilityCommand{}, err
	}
	return SetDriverAvailabilityCommand{driverID: driverID, online: online, guard: guard.NewConstructorGuard()}, nil
}

func (c SetDriverAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetDriverAvailabilityCommandIsNotConstructed)
}

func (c SetDriverAvailabilityCommand) DriverID() kernel.UUID { return c.driverID }
func (c SetDriverAvailabilityCommand) Online() bool          { return c.online }
