package http

import (
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/catalog"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/generated/servers"
)

func locationToDomain(l servers.Location) (kernel.Location, error) {
	return kernel.NewLocation(l.Latitude, l.Longitude)
}

func optionalLocation(l *servers.Location) (*kernel.Location, error) {
	if l == nil {
		return nil, nil
	}
	loc, err := locationToDomain(*l)
	if err != nil {
		return nil, err
	}
	return &loc, nil
}

func newLocation(l *kernel.Location) *servers.Location {
	if l == nil {
		return nil
	}
	return &servers.Location{Latitude: l.Latitude(), Longitude: l.Longitude()}
}

// optional maps a blank string to an omitted field.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func cartLineToDomain(line servers.CartLine) (commands.CartLine, error) {
	id, err := kernelID(line.Item.Id)
	if err != nil {
		return commands.CartLine{}, err
	}
	return commands.CartLine{
		Item: catalog.Item{
			ID:             id,
			Name:           line.Item.Name,
			Price:          line.Item.Price,
			DiscountPrice:  line.Item.DiscountPrice,
			EffectivePrice: line.Item.EffectivePrice,
			IsAvailable:    value(line.Item.IsAvailable),
			WeightKg:       value(line.Item.WeightKg),
		},
		Quantity: line.Quantity,
		Note:     value(line.Note),
	}, nil
}

func placeOrderCommand(body servers.PlaceOrderRequest) (commands.PlaceOrderCommand, error) {
	customerID, err := kernelID(body.CustomerId)
	if err != nil {
		return commands.PlaceOrderCommand{}, err
	}
	restaurantID, err := kernelID(body.RestaurantId)
	if err != nil {
		return commands.PlaceOrderCommand{}, err
	}

	lines := make([]commands.CartLine, 0, len(body.Items))
	for _, item := range body.Items {
		line, lineErr := cartLineToDomain(item)
		if lineErr != nil {
			return commands.PlaceOrderCommand{}, lineErr
		}
		lines = append(lines, line)
	}

	location, err := optionalLocation(body.CustomerLocation)
	if err != nil {
		return commands.PlaceOrderCommand{}, err
	}

	return commands.NewPlaceOrderCommand(kernel.NewUUID(), customerID, restaurantID, lines, commands.Checkout{
		PaymentMethod:       body.PaymentMethod,
		PaymentStatus:       value(body.PaymentStatus),
		SpecialInstructions: value(body.SpecialInstructions),
		CustomerLocation:    location,
		DestinationZone:     value(body.DestinationZone),
		ShippingMethod:      services.Method(value(body.ShippingMethod)),
		Discount:            value(body.Discount),
	})
}

func (s *Server) newOrder(v queries.OrderView) servers.Order {
	r := servers.Order{
		Id:                  v.ID.Bytes(),
		CustomerId:          v.CustomerID.Bytes(),
		RestaurantId:        v.RestaurantID.Bytes(),
		Status:              v.Status.String(),
		LineItems:           make([]servers.LineItem, len(v.LineItems)),
		Subtotal:            v.Subtotal.String(),
		DeliveryFee:         v.DeliveryFee.String(),
		ServiceCharge:       v.ServiceCharge.String(),
		Tax:                 v.Tax.String(),
		Discount:            v.Discount.String(),
		Total:               v.Total.String(),
		TotalDisplay:        v.Total.Format(s.currencySymbol),
		PaymentMethod:       v.PaymentMethod,
		PaymentStatus:       optional(v.PaymentStatus),
		SpecialInstructions: optional(v.SpecialInstructions),
		CustomerLocation:    newLocation(v.CustomerLocation),
		CreatedAt:           v.CreatedAt,
		UpdatedAt:           v.UpdatedAt,
	}
	if v.DriverID != nil {
		id := v.DriverID.Bytes()
		r.DriverId = &id
	}
	for i, li := range v.LineItems {
		r.LineItems[i] = servers.LineItem{
			Id:        li.ID.Bytes(),
			Name:      li.Name,
			UnitPrice: li.UnitPrice.String(),
			Quantity:  li.Quantity,
			Subtotal:  li.Subtotal.String(),
			Note:      optional(li.Note),
		}
	}
	return r
}

func newTrackingRecord(v queries.TrackingRecordView) servers.TrackingRecord {
	return servers.TrackingRecord{
		Sequence: v.Sequence,
		Status:   v.Status.String(),
		Actor:    v.Actor.String(),
		Location: optional(v.Location),
		Notes:    optional(v.Notes),
		At:       v.At,
	}
}

func newDriver(v queries.DriverView) servers.Driver {
	return servers.Driver{
		Id:                  v.ID.Bytes(),
		Name:                v.Name,
		Phone:               v.Phone,
		Vehicle:             string(v.Vehicle),
		Availability:        v.Availability.String(),
		Location:            newLocation(v.Location),
		Rating:              v.Rating,
		CompletedDeliveries: v.CompletedDeliveries,
		ClientScope:         v.ClientScope,
	}
}
