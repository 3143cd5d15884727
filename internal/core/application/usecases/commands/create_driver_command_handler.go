package commands

import (
	"context"

	"dispatch/internal/core/domain/model/driver"
)

// CreateDriverCommandHandler persists a newly registered driver.
type CreateDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

func NewCreateDriverCommandHandler(uowFactory DriverUoWFactory) CreateDriverCommandHandler {
	return CreateDriverCommandHandler{uowFactory: uowFactory}
}

func (h CreateDriverCommandHandler) Handle(ctx context.Context, command CreateDriverCommand) (*driver.Driver, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	d, err := driver.NewDriver(command.DriverID(), command.Name(), command.Phone(), command.Vehicle(), command.ClientScope())
	if err != nil {
		return nil, err
	}
	if loc := command.Location(); loc != nil {
		if err = d.UpdateLocation(*loc); err != nil {
			return nil, err
		}
	}
	if command.Online() {
		if err = d.GoOnline(); err != nil {
			return nil, err
		}
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.DriverRepository().Add(ctx, d); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return d, nil
}
