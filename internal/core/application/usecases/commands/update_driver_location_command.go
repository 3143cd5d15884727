package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrUpdateDriverLocationCommandIsNotConstructed = errors.New(
	"UpdateDriverLocationCommand must be created via NewUpdateDriverLocationCommand constructor",
)

// UpdateDriverLocationCommand is a position report sent by the driver app.
type UpdateDriverLocationCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID
	location kernel.Location

	guard guard.ConstructorGuard
}

func NewUpdateDriverLocationCommand(driverID kernel.UUID, location kernel.Location) (UpdateDriverLocationCommand, error) {
	if err := errors.Join(driverID.Validate(), location.Validate()); err != nil {
		return UpdateDriverLocationCommand{}, err
	}
	return UpdateDriverLocationCommand{
		driverID: driverID,
		location: location,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateDriverLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDriverLocationCommandIsNotConstructed)
}

func (c UpdateDriverLocationCommand) DriverID() kernel.UUID     { return c.driverID }
func (c UpdateDriverLocationCommand) Location() kernel.Location { return c.location }
