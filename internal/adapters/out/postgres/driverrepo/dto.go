// Package driverrepo maps the driver aggregate to the drivers table.
package driverrepo

import (
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DriverDTO is one row of drivers. The dispatch pool query filters on
// availability and client scope.
type DriverDTO struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name                string          `gorm:"type:varchar(255);not null"`
	Phone               string          `gorm:"type:varchar(32);not null"`
	Vehicle             string          `gorm:"type:varchar(16);not null"`
	Availability        int             `gorm:"not null;index:idx_drivers_pool,priority:1"`
	ClientScope         string          `gorm:"type:varchar(64);not null;default:'';index:idx_drivers_pool,priority:2"`
	Location            LocationDTO     `gorm:"embedded;embeddedPrefix:location_"`
	Rating              decimal.Decimal `gorm:"type:numeric(3,2);not null"`
	CompletedDeliveries int             `gorm:"not null"`
	CurrentOrderID      *uuid.UUID      `gorm:"type:uuid"`
	Version             int             `gorm:"not null"`
}

// TableName overrides GORM's default "driver_dtos".
func (DriverDTO) TableName() string {
	return "drivers"
}

// LocationDTO is the last reported position; both columns are null until
// the driver reports one.
type LocationDTO struct {
	Latitude  *float64 `gorm:"type:double precision"`
	Longitude *float64 `gorm:"type:double precision"`
}

func fromDomain(d *driver.Driver) DriverDTO {
	var currentOrderID *uuid.UUID
	if id := d.CurrentOrderID(); id != nil {
		raw := id.Bytes()
		currentOrderID = &raw
	}

	var location LocationDTO
	if l := d.Location(); l != nil {
		lat, lon := l.Latitude(), l.Longitude()
		location = LocationDTO{Latitude: &lat, Longitude: &lon}
	}

	return DriverDTO{
		ID:                  d.ID().Bytes(),
		Name:                d.Name(),
		Phone:               d.Phone(),
		Vehicle:             string(d.Vehicle()),
		Availability:        int(d.Availability()),
		ClientScope:         d.ClientScope(),
		Location:            location,
		Rating:              d.Rating(),
		CompletedDeliveries: d.CompletedDeliveries(),
		CurrentOrderID:      currentOrderID,
		Version:             d.Version(),
	}
}

func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var currentOrderID *kernel.UUID
	if dto.CurrentOrderID != nil {
		oID, orderErr := kernel.UUIDFromBytes((*dto.CurrentOrderID)[:])
		if orderErr != nil {
			return nil, orderErr
		}
		currentOrderID = &oID
	}

	var location *kernel.Location
	if dto.Location.Latitude != nil && dto.Location.Longitude != nil {
		loc, locErr := kernel.NewLocation(*dto.Location.Latitude, *dto.Location.Longitude)
		if locErr != nil {
			return nil, locErr
		}
		location = &loc
	}

	return driver.RestoreDriver(driver.State{
		ID:                  id,
		Name:                dto.Name,
		Phone:               dto.Phone,
		Vehicle:             driver.VehicleType(dto.Vehicle),
		Availability:        driver.Availability(dto.Availability),
		Location:            location,
		Rating:              dto.Rating,
		CompletedDeliveries: dto.CompletedDeliveries,
		ClientScope:         dto.ClientScope,
		CurrentOrderID:      currentOrderID,
		Version:             dto.Version,
	})
}
