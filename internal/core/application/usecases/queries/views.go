// Package queries contains the read side of the dispatch core. Queries read
// through repositories outside any transaction and return read models.
package queries

import (
	"time"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderView is the read model of an order.
type OrderView struct {
	ID                  kernel.UUID
	CustomerID          kernel.UUID
	RestaurantID        kernel.UUID
	DriverID            *kernel.UUID
	Status              order.Status
	LineItems           []LineItemView
	Subtotal            kernel.Money
	DeliveryFee         kernel.Money
	ServiceCharge       kernel.Money
	Tax                 kernel.Money
	Discount            kernel.Money
	Total               kernel.Money
	PaymentMethod       string
	PaymentStatus       string
	SpecialInstructions string
	CustomerLocation    *kernel.Location
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type LineItemView struct {
	ID        kernel.UUID
	Name      string
	UnitPrice kernel.Money
	Quantity  int
	Subtotal  kernel.Money
	Note      string
}

type TrackingRecordView struct {
	ID       kernel.UUID
	Sequence int
	Status   order.Status
	Location string
	Notes    string
	Actor    order.Actor
	At       time.Time
}

type DriverView struct {
	ID                  kernel.UUID
	Name                string
	Phone               string
	Vehicle             driver.VehicleType
	Availability        driver.Availability
	Location            *kernel.Location
	Rating              string
	CompletedDeliveries int
	ClientScope         string
}

// NewOrderView maps an aggregate to its read model.
func NewOrderView(o *order.Order) OrderView {
	b := o.Breakdown()
	view := OrderView{
		ID:                  o.ID(),
		CustomerID:          o.CustomerID(),
		RestaurantID:        o.RestaurantID(),
		DriverID:            o.DriverID(),
		Status:              o.Status(),
		Subtotal:            b.Subtotal(),
		DeliveryFee:         b.DeliveryFee(),
		ServiceCharge:       b.ServiceCharge(),
		Tax:                 b.Tax(),
		Discount:            b.Discount(),
		Total:               b.Total(),
		PaymentMethod:       o.PaymentMethod(),
		PaymentStatus:       o.PaymentStatus(),
		SpecialInstructions: o.SpecialInstructions(),
		CustomerLocation:    o.CustomerLocation(),
		CreatedAt:           o.CreatedAt(),
		UpdatedAt:           o.UpdatedAt(),
	}
	for _, li := range o.LineItems() {
		view.LineItems = append(view.LineItems, LineItemView{
			ID:        li.ID(),
			Name:      li.Name(),
			UnitPrice: li.UnitPrice(),
			Quantity:  li.Quantity(),
			Subtotal:  li.Subtotal(),
			Note:      li.Note(),
		})
	}
	return view
}

func NewTrackingRecordView(r order.TrackingRecord) TrackingRecordView {
	return TrackingRecordView{
		ID:       r.ID(),
		Sequence: r.Sequence(),
		Status:   r.Status(),
		Location: r.Location(),
		Notes:    r.Notes(),
		Actor:    r.Actor(),
		At:       r.At(),
	}
}

func NewDriverView(d *driver.Driver) DriverView {
	return DriverView{
		ID:                  d.ID(),
		Name:                d.Name(),
		Phone:               d.Phone(),
		Vehicle:             d.Vehicle(),
		Availability:        d.Availability(),
		Location:            d.Location(),
		Rating:              d.Rating().StringFixed(2),
		CompletedDeliveries: d.CompletedDeliveries(),
		ClientScope:         d.ClientScope(),
	}
}
