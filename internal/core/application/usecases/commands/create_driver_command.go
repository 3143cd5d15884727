package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrCreateDriverCommandIsNotConstructed = errors.New(
	"CreateDriverCommand must be created via NewCreateDriverCommand constructor",
)

// CreateDriverCommand registers a driver, optionally online at a known
// location.
type CreateDriverCommand struct { //nolint:recvcheck //using for validation
	driverID    kernel.UUID
	name        string
	phone       string
	vehicle     driver.VehicleType
	clientScope string
	location    *kernel.Location
	online      bool

	guard guard.ConstructorGuard
}

func NewCreateDriverCommand(
	driverID kernel.UUID,
	name, phone string,
	vehicle driver.VehicleType,
	clientScope string,
	location *kernel.Location,
	online bool,
) (CreateDriverCommand, error) {
	cmd := CreateDriverCommand{
		driverID:    driverID,
		name:        name,
		phone:       phone,
		vehicle:     vehicle,
		clientScope: clientScope,
		location:    location,
		online:      online,
		guard:       guard.NewConstructorGuard(),
	}

	errList := []error{driverID.Validate(), vehicle.Validate()}
	if name == "" {
		errList = append(errList, driver.ErrNameIsRequired)
	}
	if phone == "" {
		errList = append(errList, driver.ErrPhoneIsRequired)
	}
	if location != nil {
		errList = append(errList, location.Validate())
	}
	if err := errors.Join(errList...); err != nil {
		return CreateDriverCommand{}, err
	}

	return cmd, nil
}

func (c CreateDriverCommand) Validate() error {
	return c.guard.Validate(ErrCreateDriverCommandIsNotConstructed)
}

func (c CreateDriverCommand) DriverID() kernel.UUID       { return c.driverID }
func (c CreateDriverCommand) Name() string                { return c.name }
func (c CreateDriverCommand) Phone() string               { return c.phone }
func (c CreateDriverCommand) Vehicle() driver.VehicleType { return c.vehicle }
func (c CreateDriverCommand) ClientScope() string         { return c.clientScope }
func (c CreateDriverCommand) Location() *kernel.Location  { return c.location }
func (c CreateDriverCommand) Online() bool                { return c.online }
