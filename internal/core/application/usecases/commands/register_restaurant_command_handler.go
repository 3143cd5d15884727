package commands

import (
	"context"
)

// RegisterRestaurantCommandHandler creates or replaces restaurant terms.
type RegisterRestaurantCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

func NewRegisterRestaurantCommandHandler(uowFactory RestaurantUoWFactory) RegisterRestaurantCommandHandler {
	return RegisterRestaurantCommandHandler{uowFactory: uowFactory}
}

func (h RegisterRestaurantCommandHandler) Handle(ctx context.Context, command RegisterRestaurantCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.RestaurantRepository().Save(ctx, command.Terms()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
