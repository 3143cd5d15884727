package commands

import (
	"errors"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrRegisterRestaurantCommandIsNotConstructed = errors.New(
	"RegisterRestaurantCommand must be created via NewRegisterRestaurantCommand constructor",
)

// RegisterRestaurantCommand carries restaurant terms synced from the menu
// collaborator. A blank minimum means no minimum order.
type RegisterRestaurantCommand struct { //nolint:recvcheck //using for validation
	terms ports.RestaurantTerms

	guard guard.ConstructorGuard
}

func NewRegisterRestaurantCommand(
	restaurantID kernel.UUID,
	name, minimumOrder, clientScope string,
	zone int,
) (RegisterRestaurantCommand, error) {
	cmd := RegisterRestaurantCommand{
		terms: ports.RestaurantTerms{
			RestaurantID: restaurantID,
			Name:         name,
			ClientScope:  clientScope,
			Zone:         zone,
		},
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		restaurantID.Validate(),
		cmd.setName(name),
		cmd.setMinimumOrder(minimumOrder),
	); err != nil {
		return RegisterRestaurantCommand{}, err
	}

	return cmd, nil
}

func (c RegisterRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrRegisterRestaurantCommandIsNotConstructed)
}

func (c RegisterRestaurantCommand) Terms() ports.RestaurantTerms { return c.terms }

func (c *RegisterRestaurantCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("restaurant name")
	}
	return nil
}

func (c *RegisterRestaurantCommand) setMinimumOrder(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	minimum, err := kernel.ParseMoney(raw)
	if err != nil {
		return err
	}
	if minimum.IsNegative() {
		return errs.NewValueIsInvalidError("minimum order")
	}
	c.terms.MinimumOrder = &minimum
	return nil
}
