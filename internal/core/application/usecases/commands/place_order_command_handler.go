package commands

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// Pricing holds the order-level pricing parameters configured for the
// deployment.
type Pricing struct {
	TaxRate        string
	ServiceFeeRate string
	// Shipping prices parcels; nil charges no shipping.
	Shipping services.ShippingPolicy
}

// PlaceOrderCommandHandler turns a cart into a pending order.
//
// Business flow:
//   - Reject unavailable items (ItemUnavailableError)
//   - Resolve unit prices and compute totals (InvalidPriceError, InvalidQuantityError, ArithmeticError)
//   - Enforce the restaurant minimum on the subtotal (BelowMinimumOrderError); an
//     unregistered restaurant orders on DefaultRestaurantTerms
//   - Create the order in pending with its initial tracking record and persist it
//
// Nothing is written when any step fails.
type PlaceOrderCommandHandler struct {
	uowFactory PlaceOrderUoWFactory
	clock      ports.Clock
	pricing    Pricing
	engine     services.PriceEngine
}

func NewPlaceOrderCommandHandler(
	uowFactory PlaceOrderUoWFactory,
	clock ports.Clock,
	pricing Pricing,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		pricing:    pricing,
		engine:     services.NewPriceEngine(),
	}
}

func (h PlaceOrderCommandHandler) Handle(ctx context.Context, command PlaceOrderCommand) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	items, priced, err := h.priceLines(command.Lines())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	terms, err := uow.RestaurantRepository().Get(ctx, command.RestaurantID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		terms, err = ports.DefaultRestaurantTerms(command.RestaurantID()), nil
	}
	if err != nil {
		return nil, err
	}

	checkout := command.Checkout()
	totals, err := h.engine.ComputeOrderTotals(priced, h.pricing.Shipping, services.TotalsInput{
		TaxRate:        h.pricing.TaxRate,
		ServiceFeeRate: h.pricing.ServiceFeeRate,
		Discount:       checkout.Discount,
		From:           services.Zone(terms.Zone),
		To:             services.Zone(checkout.DestinationZone),
		Method:         checkout.ShippingMethod,
	})
	if err != nil {
		return nil, err
	}

	if terms.MinimumOrder != nil && totals.Subtotal.Cmp(*terms.MinimumOrder) < 0 {
		return nil, NewBelowMinimumOrderError(*terms.MinimumOrder, totals.Subtotal)
	}

	breakdown, err := totals.Breakdown()
	if err != nil {
		return nil, err
	}

	o, err := order.NewOrder(command.OrderID(), order.Placement{
		CustomerID:          command.CustomerID(),
		RestaurantID:        command.RestaurantID(),
		ClientScope:         terms.ClientScope,
		LineItems:           items,
		Breakdown:           breakdown,
		PaymentMethod:       checkout.PaymentMethod,
		PaymentStatus:       checkout.PaymentStatus,
		SpecialInstructions: checkout.SpecialInstructions,
		CustomerLocation:    checkout.CustomerLocation,
	}, order.Actor{Kind: order.ActorCustomer, ID: command.CustomerID().String()}, h.clock.Now())
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}

func (h PlaceOrderCommandHandler) priceLines(lines []CartLine) ([]order.LineItem, []services.PricedLine, error) {
	items := make([]order.LineItem, 0, len(lines))
	priced := make([]services.PricedLine, 0, len(lines))

	for _, line := range lines {
		if !line.Item.IsAvailable {
			return nil, nil, NewItemUnavailableError(line.Item.ID, line.Item.Name)
		}

		unit, err := h.engine.ResolveUnitPrice(line.Item)
		if err != nil {
			return nil, nil, err
		}
		if _, err = h.engine.ComputeLineSubtotal(unit, line.Quantity); err != nil {
			return nil, nil, err
		}
		weight, err := services.WeightFromFloat(line.Item.WeightKg)
		if err != nil {
			return nil, nil, err
		}

		item, err := order.NewLineItem(
			kernel.NewUUID(), line.Item.ID, line.Item.Name, unit, line.Quantity, weight, line.Note,
		)
		if err != nil {
			return nil, nil, err
		}

		items = append(items, item)
		priced = append(priced, services.PricedLine{UnitPrice: unit, Quantity: line.Quantity, WeightKg: weight})
	}

	return items, priced, nil
}
