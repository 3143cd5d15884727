package commands

import (
	"errors"
	"slices"

	"dispatch/internal/core/domain/model/catalog"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// CartLine is one line of the submitted cart: the catalog snapshot the client
// saw and the requested quantity.
type CartLine struct {
	Item     catalog.Item
	Quantity int
	Note     string
}

// Checkout carries the customer-facing order details.
type Checkout struct {
	PaymentMethod       string
	PaymentStatus       string
	SpecialInstructions string
	// CustomerLocation is optional; without it the order cannot be
	// dispatched automatically.
	CustomerLocation *kernel.Location
	DestinationZone  int
	ShippingMethod   services.Method
	Discount         string
}

// PlaceOrderCommand submits an immutable cart for a customer and restaurant.
//
//	cmd, err := NewPlaceOrderCommand(kernel.NewUUID(), customerID, restaurantID, lines, Checkout{PaymentMethod: "cash"})
//	if err != nil {
//	    return err
//	}
//	o, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	customerID   kernel.UUID
	restaurantID kernel.UUID
	lines        []CartLine
	checkout     Checkout

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand fails with EmptyCartError for a cart without lines.
// Quantities and prices are checked by the handler.
func NewPlaceOrderCommand(
	orderID, customerID, restaurantID kernel.UUID,
	lines []CartLine,
	checkout Checkout,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		checkout: checkout,
		guard:    guard.NewConstructorGuard(),
	}
	if cmd.checkout.ShippingMethod == "" {
		cmd.checkout.ShippingMethod = services.MethodStandard
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setRestaurantID(restaurantID),
		cmd.setLines(lines),
		cmd.setPaymentMethod(checkout.PaymentMethod),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) OrderID() kernel.UUID      { return c.orderID }
func (c PlaceOrderCommand) CustomerID() kernel.UUID   { return c.customerID }
func (c PlaceOrderCommand) RestaurantID() kernel.UUID { return c.restaurantID }
func (c PlaceOrderCommand) Lines() []CartLine         { return slices.Clone(c.lines) }
func (c PlaceOrderCommand) Checkout() Checkout        { return c.checkout }

func (c *PlaceOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *PlaceOrderCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer id", err)
	}
	c.customerID = id
	return nil
}

func (c *PlaceOrderCommand) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurant id", err)
	}
	c.restaurantID = id
	return nil
}

func (c *PlaceOrderCommand) setLines(lines []CartLine) error {
	if len(lines) == 0 {
		return &EmptyCartError{}
	}
	c.lines = slices.Clone(lines)
	return nil
}

func (c *PlaceOrderCommand) setPaymentMethod(method string) error {
	if method == "" {
		return errs.NewValueIsRequiredError("payment method")
	}
	return nil
}
