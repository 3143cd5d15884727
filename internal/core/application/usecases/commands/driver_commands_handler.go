package commands

import (
	"context"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/keylock"
)

// UpdateDriverLocationCommandHandler stores a driver's position report.
type UpdateDriverLocationCommandHandler struct {
	uowFactory  DriverUoWFactory
	driverLocks *keylock.Locker
}

func NewUpdateDriverLocationCommandHandler(
	uowFactory DriverUoWFactory,
	driverLocks *keylock.Locker,
) UpdateDriverLocationCommandHandler {
	return UpdateDriverLocationCommandHandler{uowFactory: uowFactory, driverLocks: driverLocks}
}

func (h UpdateDriverLocationCommandHandler) Handle(ctx context.Context, command UpdateDriverLocationCommand) (*driver.Driver, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}
	return mutateDriver(ctx, h.uowFactory, h.driverLocks, command.DriverID(), func(d *driver.Driver) error {
		return d.UpdateLocation(command.Location())
	})
}

// SetDriverAvailabilityCommandHandler takes a driver online or offline.
type SetDriverAvailabilityCommandHandler struct {
	uowFactory  DriverUoWFactory
	driverLocks *keylock.Locker
}

func NewSetDriverAvailabilityCommandHandler(
	uowFactory DriverUoWFactory,
	driverLocks *keylock.Locker,
) SetDriverAvailabilityCommandHandler {
	return SetDriverAvailabilityCommandHandler{uowFactory: uowFactory, driverLocks: driverLocks}
}

// Handle fails with driver.ErrDriverIsBusy while the driver is on an order.
func (h SetDriverAvailabilityCommandHandler) Handle(ctx context.Context, command SetDriverAvailabilityCommand) (*driver.Driver, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}
	return mutateDriver(ctx, h.uowFactory, h.driverLocks, command.DriverID(), func(d *driver.Driver) error {
		if command.Online() {
			return d.GoOnline()
		}
		return d.GoOffline()
	})
}

// mutateDriver loads, changes and stores one driver under its lock.
func mutateDriver(
	ctx context.Context,
	uowFactory DriverUoWFactory,
	locks *keylock.Locker,
	id kernel.UUID,
	mutate func(*driver.Driver) error,
) (*driver.Driver, error) {
	unlock := locks.Lock(id.String())
	defer unlock()

	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DriverRepository()

	d, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = mutate(d); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, d); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return d, nil
}
