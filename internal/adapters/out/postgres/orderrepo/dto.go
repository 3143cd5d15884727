// Package orderrepo maps the order aggregate to the orders,
// order_line_items and order_tracking_records tables.
package orderrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is one row of orders. Tracking records are append-only children;
// line items never change after placement.
type OrderDTO struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	RestaurantID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	ClientScope         string          `gorm:"type:varchar(64);not null;default:''"`
	DriverID            *uuid.UUID      `gorm:"type:uuid;index"`
	Status              int             `gorm:"not null;index"`
	Subtotal            decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	DeliveryFee         decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	ServiceCharge       decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	Tax                 decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	Discount            decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	Total               decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	PaymentMethod       string          `gorm:"type:varchar(32);not null"`
	PaymentStatus       string          `gorm:"type:varchar(32);not null;default:''"`
	SpecialInstructions string          `gorm:"type:text"`
	CustomerLocation    LocationDTO     `gorm:"embedded;embeddedPrefix:customer_location_"`
	CreatedAt           time.Time       `gorm:"not null;autoCreateTime:false"`
	UpdatedAt           time.Time       `gorm:"not null;index;autoUpdateTime:false"`
	Version             int             `gorm:"not null"`

	LineItems []LineItemDTO       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Records   []TrackingRecordDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// LocationDTO is an optional coordinate pair; both columns are null when the
// location is absent.
type LocationDTO struct {
	Latitude  *float64 `gorm:"type:double precision"`
	Longitude *float64 `gorm:"type:double precision"`
}

// LineItemDTO is one row of order_line_items.
type LineItemDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position      int             `gorm:"not null"`
	CatalogItemID uuid.UUID       `gorm:"type:uuid;not null"`
	Name          string          `gorm:"type:varchar(255);not null"`
	UnitPrice     decimal.Decimal `gorm:"type:numeric;not null"`
	Quantity      int             `gorm:"not null"`
	Subtotal      decimal.Decimal `gorm:"type:numeric;not null"`
	WeightKg      decimal.Decimal `gorm:"type:numeric;not null"`
	Note          string          `gorm:"type:text"`
}

func (LineItemDTO) TableName() string {
	return "order_line_items"
}

// TrackingRecordDTO is one row of order_tracking_records. (order_id,
// sequence) is unique, so a record is written at most once.
type TrackingRecordDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_order_tracking_sequence"`
	Sequence  int       `gorm:"not null;uniqueIndex:idx_order_tracking_sequence"`
	Status    int       `gorm:"not null"`
	Location  string    `gorm:"type:varchar(255)"`
	Notes     string    `gorm:"type:text"`
	ActorKind string    `gorm:"type:varchar(16);not null"`
	ActorID   string    `gorm:"type:varchar(128);not null"`
	At        time.Time `gorm:"not null"`
}

func (TrackingRecordDTO) TableName() string {
	return "order_tracking_records"
}

// fromDomain converts the aggregate, children included.
func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().Bytes()

	var driverID *uuid.UUID
	if id := o.DriverID(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	b := o.Breakdown()
	dto := OrderDTO{
		ID:                  orderID,
		CustomerID:          o.CustomerID().Bytes(),
		RestaurantID:        o.RestaurantID().Bytes(),
		ClientScope:         o.ClientScope(),
		DriverID:            driverID,
		Status:              int(o.Status()),
		Subtotal:            b.Subtotal().Decimal(),
		DeliveryFee:         b.DeliveryFee().Decimal(),
		ServiceCharge:       b.ServiceCharge().Decimal(),
		Tax:                 b.Tax().Decimal(),
		Discount:            b.Discount().Decimal(),
		Total:               b.Total().Decimal(),
		PaymentMethod:       o.PaymentMethod(),
		PaymentStatus:       o.PaymentStatus(),
		SpecialInstructions: o.SpecialInstructions(),
		CustomerLocation:    locationFromDomain(o.CustomerLocation()),
		CreatedAt:           o.CreatedAt(),
		UpdatedAt:           o.UpdatedAt(),
		Version:             o.Version(),
	}

	for i, li := range o.LineItems() {
		dto.LineItems = append(dto.LineItems, LineItemDTO{
			ID:            li.ID().Bytes(),
			OrderID:       orderID,
			Position:      i,
			CatalogItemID: li.CatalogItemID().Bytes(),
			Name:          li.Name(),
			UnitPrice:     li.UnitPrice().Decimal(),
			Quantity:      li.Quantity(),
			Subtotal:      li.Subtotal().Decimal(),
			WeightKg:      li.WeightKg(),
			Note:          li.Note(),
		})
	}

	dto.Records = recordsFromDomain(orderID, o.Records())
	return dto
}

func recordsFromDomain(orderID uuid.UUID, records []order.TrackingRecord) []TrackingRecordDTO {
	dtos := make([]TrackingRecordDTO, 0, len(records))
	for _, r := range records {
		actor := r.Actor()
		dtos = append(dtos, TrackingRecordDTO{
			ID:        r.ID().Bytes(),
			OrderID:   orderID,
			Sequence:  r.Sequence(),
			Status:    int(r.Status()),
			Location:  r.Location(),
			Notes:     r.Notes(),
			ActorKind: string(actor.Kind),
			ActorID:   actor.ID,
			At:        r.At(),
		})
	}
	return dtos
}

func locationFromDomain(l *kernel.Location) LocationDTO {
	if l == nil {
		return LocationDTO{}
	}
	lat, lon := l.Latitude(), l.Longitude()
	return LocationDTO{Latitude: &lat, Longitude: &lon}
}

func (l LocationDTO) toDomain() (*kernel.Location, error) {
	if l.Latitude == nil || l.Longitude == nil {
		return nil, nil //nolint:nilnil // absent location
	}
	loc, err := kernel.NewLocation(*l.Latitude, *l.Longitude)
	if err != nil {
		return nil, err
	}
	return &loc, nil
}

// toDomain rebuilds the aggregate through RestoreOrder, which checks the
// stored status against the latest tracking record.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &dID
	}

	location, err := dto.CustomerLocation.toDomain()
	if err != nil {
		return nil, err
	}

	breakdown, err := order.RestoreBreakdown(
		kernel.MoneyFromDecimal(dto.Subtotal),
		kernel.MoneyFromDecimal(dto.DeliveryFee),
		kernel.MoneyFromDecimal(dto.ServiceCharge),
		kernel.MoneyFromDecimal(dto.Tax),
		kernel.MoneyFromDecimal(dto.Discount),
		kernel.MoneyFromDecimal(dto.Total),
	)
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.LineItems))
	for _, li := range dto.LineItems {
		item, itemErr := lineItemToDomain(li)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	records := make([]order.TrackingRecord, 0, len(dto.Records))
	for _, r := range dto.Records {
		record, recordErr := recordToDomain(id, r)
		if recordErr != nil {
			return nil, recordErr
		}
		records = append(records, record)
	}

	return order.RestoreOrder(order.State{
		ID: id,
		Placement: order.Placement{
			CustomerID:          customerID,
			RestaurantID:        restaurantID,
			ClientScope:         dto.ClientScope,
			LineItems:           items,
			Breakdown:           breakdown,
			PaymentMethod:       dto.PaymentMethod,
			PaymentStatus:       dto.PaymentStatus,
			SpecialInstructions: dto.SpecialInstructions,
			CustomerLocation:    location,
		},
		DriverID:  driverID,
		Status:    order.Status(dto.Status),
		Records:   records,
		CreatedAt: dto.CreatedAt.UTC(),
		UpdatedAt: dto.UpdatedAt.UTC(),
		Version:   dto.Version,
	})
}

func lineItemToDomain(dto LineItemDTO) (order.LineItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.LineItem{}, err
	}
	catalogID, err := kernel.UUIDFromBytes(dto.CatalogItemID[:])
	if err != nil {
		return order.LineItem{}, err
	}
	return order.NewLineItem(id, catalogID, dto.Name, kernel.MoneyFromDecimal(dto.UnitPrice), dto.Quantity, dto.WeightKg, dto.Note)
}

func recordToDomain(orderID kernel.UUID, dto TrackingRecordDTO) (order.TrackingRecord, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.TrackingRecord{}, err
	}
	actor := order.Actor{Kind: order.ActorKind(dto.ActorKind), ID: dto.ActorID}
	return order.RestoreTrackingRecord(
		id, orderID, dto.Sequence, order.Status(dto.Status), dto.Location, dto.Notes, actor, dto.At.UTC(),
	)
}
