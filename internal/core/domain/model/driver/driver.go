package driver

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	// RatingMin and RatingMax bound the driver rating.
	RatingMin = decimal.Zero
	RatingMax = decimal.NewFromInt(5)

	// DefaultRating is given to newly registered drivers.
	DefaultRating = decimal.NewFromInt(5)
)

// Driver is the aggregate root representing a delivery driver.
//
// Key responsibilities:
//   - Holding identity, contact data and vehicle type
//   - Tracking availability for dispatch (available, busy, offline)
//   - Keeping the last reported coordinates used by nearest-driver search
//   - Counting completed deliveries
//
// Business rules:
//   - Only an available driver can be marked busy
//   - A busy driver is released back to available; the completed count grows
//     only when the released order was delivered
//   - A busy driver cannot go offline
//   - Every mutation bumps the optimistic-lock version
//
// Example usage:
//
//	d, err := driver.NewDriver(kernel.NewUUID(), "Lucía", "+54 11 5555-0101", driver.Motorcycle, "caba")
//	if err != nil {
//	    // handle validation error
//	}
//	_ = d.GoOnline()
type Driver struct {
	// id uniquely identifies the driver
	id kernel.UUID
	// name and phone are contact data shown to customers
	name  string
	phone string
	// vehicle is the kind of vehicle the driver uses
	vehicle VehicleType
	// availability is the dispatch state
	availability Availability
	// location is the last reported position, nil until the first report
	location *kernel.Location
	// rating is between RatingMin and RatingMax
	rating decimal.Decimal
	// completedDeliveries counts delivered orders over the driver's lifetime
	completedDeliveries int
	// clientScope partitions the driver pool, e.g. per city or tenant
	clientScope string
	// currentOrderID is the order the driver is busy with
	currentOrderID *kernel.UUID

	version          int
	persistedVersion int

	guard guard.ConstructorGuard
}

// State is the persisted form of a Driver, used by RestoreDriver.
type State struct {
	ID                  kernel.UUID
	Name                string
	Phone               string
	Vehicle             VehicleType
	Availability        Availability
	Location            *kernel.Location
	Rating              decimal.Decimal
	CompletedDeliveries int
	ClientScope         string
	CurrentOrderID      *kernel.UUID
	Version             int
}

// NewDriver registers a driver. New drivers start offline with DefaultRating
// and no known location.
func NewDriver(id kernel.UUID, name, phone string, vehicle VehicleType, clientScope string) (*Driver, error) {
	d := &Driver{
		availability: Offline,
		rating:       DefaultRating,
		clientScope:  clientScope,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setPhone(phone),
		d.setVehicle(vehicle),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver reconstructs a Driver from persistent storage.
//
// Business rules:
//   - All NewDriver rules apply
//   - Rating must be within [RatingMin, RatingMax]
//   - Completed deliveries cannot be negative
//   - A busy driver must reference the order it is busy with
func RestoreDriver(s State) (*Driver, error) {
	d := &Driver{
		clientScope:      s.ClientScope,
		currentOrderID:   s.CurrentOrderID,
		version:          s.Version,
		persistedVersion: s.Version,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(s.ID),
		d.setName(s.Name),
		d.setPhone(s.Phone),
		d.setVehicle(s.Vehicle),
		d.setAvailability(s.Availability),
		d.setRating(s.Rating),
		d.setCompletedDeliveries(s.CompletedDeliveries),
	); err != nil {
		return nil, err
	}
	if s.Location != nil {
		if err := d.setLocation(*s.Location); err != nil {
			return nil, err
		}
	}
	if (d.availability == Busy) != (d.currentOrderID != nil) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"current order",
			fmt.Errorf("a %s driver cannot have current order %v", d.availability, d.currentOrderID),
		)
	}

	return d, nil
}

// IsEqual compares drivers by identity.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// Validate reports ErrDriverIsNotConstructed for nil or zero-value drivers.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

func (d *Driver) ID() kernel.UUID            { return d.id }
func (d *Driver) Name() string               { return d.name }
func (d *Driver) Phone() string              { return d.phone }
func (d *Driver) Vehicle() VehicleType       { return d.vehicle }
func (d *Driver) Availability() Availability { return d.availability }
func (d *Driver) Rating() decimal.Decimal    { return d.rating }
func (d *Driver) CompletedDeliveries() int   { return d.completedDeliveries }
func (d *Driver) ClientScope() string        { return d.clientScope }
func (d *Driver) Version() int               { return d.version }
func (d *Driver) PersistedVersion() int      { return d.persistedVersion }
func (d *Driver) IsAvailable() bool          { return d.availability == Available }

// Location returns the last reported position, or nil if none was reported.
func (d *Driver) Location() *kernel.Location {
	if d.location == nil {
		return nil
	}
	l := *d.location
	return &l
}

// CurrentOrderID returns the order the driver is busy with, or nil.
func (d *Driver) CurrentOrderID() *kernel.UUID {
	if d.currentOrderID == nil {
		return nil
	}
	id := *d.currentOrderID
	return &id
}

// MarkPersisted is called by repositories once the current version is stored.
func (d *Driver) MarkPersisted() {
	d.persistedVersion = d.version
}

// UpdateLocation stores a location report from the driver.
func (d *Driver) UpdateLocation(location kernel.Location) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if err := d.setLocation(location); err != nil {
		return err
	}
	d.version++
	return nil
}

// GoOnline makes an offline driver available. It is a no-op for an available
// driver and fails with ErrDriverIsBusy for a busy one.
func (d *Driver) GoOnline() error {
	if err := d.Validate(); err != nil {
		return err
	}
	switch d.availability {
	case Available:
		return nil
	case Busy:
		return ErrDriverIsBusy
	case Offline, AvailabilityUnknown:
	}
	d.availability = Available
	d.version++
	return nil
}

// GoOffline removes the driver from the dispatch pool.
func (d *Driver) GoOffline() error {
	if err := d.Validate(); err != nil {
		return err
	}
	switch d.availability {
	case Offline:
		return nil
	case Busy:
		return ErrDriverIsBusy
	case Available, AvailabilityUnknown:
	}
	d.availability = Offline
	d.version++
	return nil
}

// MarkBusy flips an available driver to busy with orderID. Any other
// availability yields a DriverNotAvailableError: the driver changed between
// selection and assignment.
func (d *Driver) MarkBusy(orderID kernel.UUID) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if err := orderID.Validate(); err != nil {
		return err
	}
	if d.availability != Available {
		return NewDriverNotAvailableError(d.id, d.availability)
	}

	d.availability = Busy
	d.currentOrderID = &orderID
	d.version++
	return nil
}

// Release returns a busy driver to available. The completed count grows only
// when delivered is true.
func (d *Driver) Release(delivered bool) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if d.availability != Busy {
		return ErrDriverIsNotBusy
	}

	d.availability = Available
	d.currentOrderID = nil
	if delivered {
		d.completedDeliveries++
	}
	d.version++
	return nil
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	d.name = name
	return nil
}

func (d *Driver) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}
	d.phone = phone
	return nil
}

func (d *Driver) setVehicle(v VehicleType) error {
	if err := v.Validate(); err != nil {
		return err
	}
	d.vehicle = v
	return nil
}

func (d *Driver) setAvailability(a Availability) error {
	if err := a.Validate(); err != nil {
		return err
	}
	d.availability = a
	return nil
}

func (d *Driver) setRating(r decimal.Decimal) error {
	if r.LessThan(RatingMin) || r.GreaterThan(RatingMax) {
		return errs.NewValueIsOutOfRangeError("rating", r.String(), RatingMin.String(), RatingMax.String())
	}
	d.rating = r
	return nil
}

func (d *Driver) setCompletedDeliveries(n int) error {
	if n < 0 {
		return errs.NewValueIsOutOfRangeError("completed deliveries", n, 0, "unbounded")
	}
	d.completedDeliveries = n
	return nil
}

func (d *Driver) setLocation(l kernel.Location) error {
	if err := l.Validate(); err != nil {
		return err
	}
	d.location = &l
	return nil
}
