package order

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Placement carries everything fixed at the moment an order is placed.
type Placement struct {
	CustomerID          kernel.UUID
	RestaurantID        kernel.UUID
	ClientScope         string
	LineItems           []LineItem
	Breakdown           Breakdown
	PaymentMethod       string
	PaymentStatus       string
	SpecialInstructions string
	CustomerLocation    *kernel.Location
}

// State is the persisted form of an Order, used by RestoreOrder.
type State struct {
	ID        kernel.UUID
	Placement Placement
	DriverID  *kernel.UUID
	Status    Status
	// Records in chronological order.
	Records   []TrackingRecord
	CreatedAt time.Time
	UpdatedAt time.Time
	Version   int
}

// Order is the aggregate root of the order lifecycle. Its status only ever
// changes through Transition, which appends the matching TrackingRecord in
// the same step, so the latest record always agrees with Status.
type Order struct {
	id                  kernel.UUID
	customerID          kernel.UUID
	restaurantID        kernel.UUID
	clientScope         string
	driverID            *kernel.UUID
	lineItems           []LineItem
	breakdown           Breakdown
	paymentMethod       string
	paymentStatus       string
	specialInstructions string
	customerLocation    *kernel.Location
	status              Status
	records             []TrackingRecord
	createdAt           time.Time
	updatedAt           time.Time

	version          int
	persistedVersion int
	events           []StatusChanged

	guard guard.ConstructorGuard
}

// NewOrder creates an order in Pending with its initial tracking record.
func NewOrder(id kernel.UUID, p Placement, actor Actor, at time.Time) (*Order, error) {
	o := &Order{
		guard:               guard.NewConstructorGuard(),
		clientScope:         p.ClientScope,
		paymentStatus:       p.PaymentStatus,
		specialInstructions: p.SpecialInstructions,
		breakdown:           p.Breakdown,
		status:              Unknown,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(p.CustomerID),
		o.setRestaurantID(p.RestaurantID),
		o.setLineItems(p.LineItems),
		o.setPaymentMethod(p.PaymentMethod),
		o.setCustomerLocation(p.CustomerLocation),
		actor.Validate(),
	); err != nil {
		return nil, err
	}

	at = at.UTC()
	o.createdAt = at
	o.appendRecord(Pending, actor, "", "placed", at)

	return o, nil
}

// RestoreOrder rebuilds an order from persistence without recording events.
func RestoreOrder(s State) (*Order, error) {
	o := &Order{
		guard:               guard.NewConstructorGuard(),
		clientScope:         s.Placement.ClientScope,
		paymentStatus:       s.Placement.PaymentStatus,
		specialInstructions: s.Placement.SpecialInstructions,
		breakdown:           s.Placement.Breakdown,
		driverID:            s.DriverID,
		status:              s.Status,
		createdAt:           s.CreatedAt.UTC(),
		updatedAt:           s.UpdatedAt.UTC(),
		version:             s.Version,
		persistedVersion:    s.Version,
	}

	if err := errors.Join(
		o.setID(s.ID),
		o.setCustomerID(s.Placement.CustomerID),
		o.setRestaurantID(s.Placement.RestaurantID),
		o.setLineItems(s.Placement.LineItems),
		o.setPaymentMethod(s.Placement.PaymentMethod),
		o.setCustomerLocation(s.Placement.CustomerLocation),
		s.Status.Validate(),
	); err != nil {
		return nil, err
	}
	if err := o.setRecords(s.Records); err != nil {
		return nil, err
	}
	if err := o.status.ValidateCanHaveDriver(o.driverID != nil); err != nil {
		return nil, err
	}

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID           { return o.id }
func (o *Order) CustomerID() kernel.UUID   { return o.customerID }
func (o *Order) RestaurantID() kernel.UUID { return o.restaurantID }
func (o *Order) ClientScope() string       { return o.clientScope }
func (o *Order) Breakdown() Breakdown      { return o.breakdown }
func (o *Order) PaymentMethod() string     { return o.paymentMethod }
func (o *Order) PaymentStatus() string     { return o.paymentStatus }
func (o *Order) SpecialInstructions() string {
	return o.specialInstructions
}
func (o *Order) CreatedAt() time.Time { return o.createdAt }
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// LineItems returns a copy of the placement snapshot.
func (o *Order) LineItems() []LineItem {
	return slices.Clone(o.lineItems)
}

// CustomerLocation is nil when the customer gave no coordinates.
func (o *Order) CustomerLocation() *kernel.Location {
	if o.customerLocation == nil {
		return nil
	}
	l := *o.customerLocation
	return &l
}

// DriverID is nil until a driver is attached.
func (o *Order) DriverID() *kernel.UUID {
	if o.driverID == nil {
		return nil
	}
	id := *o.driverID
	return &id
}

// CurrentState returns the current lifecycle status.
func (o *Order) CurrentState() Status {
	return o.status
}

// Status is an alias of CurrentState.
func (o *Order) Status() Status {
	return o.status
}

// History returns the tracking records, most recent first.
func (o *Order) History() []TrackingRecord {
	h := slices.Clone(o.records)
	slices.Reverse(h)
	return h
}

// Records returns the tracking records in chronological order.
func (o *Order) Records() []TrackingRecord {
	return slices.Clone(o.records)
}

// Version is the optimistic-lock counter, bumped by every mutation.
func (o *Order) Version() int { return o.version }

// PersistedVersion is the version the storage row is expected to hold.
func (o *Order) PersistedVersion() int { return o.persistedVersion }

// MarkPersisted is called by repositories once the current version is stored.
func (o *Order) MarkPersisted() {
	o.persistedVersion = o.version
}

// PullEvents returns and clears the events recorded since the last pull.
func (o *Order) PullEvents() []StatusChanged {
	ev := o.events
	o.events = nil
	return ev
}

// Transition moves the order to target and returns the appended record. On
// any failure the order is left untouched. at is clamped so the new record
// never precedes the previous one.
func (o *Order) Transition(target Status, actor Actor, location, notes string, at time.Time) (TrackingRecord, error) {
	if err := o.Validate(); err != nil {
		return TrackingRecord{}, err
	}
	if err := actor.Validate(); err != nil {
		return TrackingRecord{}, err
	}
	if err := o.status.ValidateTransition(target); err != nil {
		return TrackingRecord{}, err
	}
	if err := target.ValidateCanHaveDriver(o.driverID != nil); err != nil {
		return TrackingRecord{}, NewIllegalTransitionError(o.status, target, "a driver must be attached first")
	}

	return o.appendRecord(target, actor, location, notes, at.UTC()), nil
}

// AttachDriver stores the driver reference. Only a ready order without a
// driver accepts one; the status change to Assigned is a separate Transition.
func (o *Order) AttachDriver(driverID kernel.UUID) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := driverID.Validate(); err != nil {
		return err
	}
	if o.status != Ready {
		return NewIllegalTransitionError(o.status, Assigned, "a driver can only be attached to a ready order")
	}
	if o.driverID != nil {
		return ErrDriverAlreadyAttached
	}

	o.driverID = &driverID
	o.touch(o.updatedAt)
	return nil
}

// RecordPaymentStatus stores the externally reported payment status as-is.
func (o *Order) RecordPaymentStatus(status string, at time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	o.paymentStatus = status
	o.touch(at.UTC())
	return nil
}

// appendRecord builds the record before any field is mutated.
func (o *Order) appendRecord(target Status, actor Actor, location, notes string, at time.Time) TrackingRecord {
	sequence := 1
	if n := len(o.records); n > 0 {
		last := o.records[n-1]
		sequence = last.sequence + 1
		if at.Before(last.at) {
			at = last.at
		}
	}

	rec := TrackingRecord{
		id:       kernel.NewUUID(),
		orderID:  o.id,
		sequence: sequence,
		status:   target,
		location: location,
		notes:    notes,
		actor:    actor,
		at:       at,
	}
	event := StatusChanged{
		EventID:  kernel.NewUUID(),
		OrderID:  o.id,
		From:     o.status,
		To:       target,
		DriverID: o.DriverID(),
		Actor:    actor,
		At:       at,
	}

	o.status = target
	o.records = append(o.records, rec)
	o.events = append(o.events, event)
	o.touch(at)
	return rec
}

func (o *Order) touch(at time.Time) {
	if at.After(o.updatedAt) {
		o.updatedAt = at
	}
	o.version++
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer id", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurant id", err)
	}
	o.restaurantID = id
	return nil
}

func (o *Order) setLineItems(items []LineItem) error {
	if len(items) == 0 {
		return ErrLineItemsAreRequired
	}
	o.lineItems = slices.Clone(items)
	return nil
}

func (o *Order) setPaymentMethod(method string) error {
	if method == "" {
		return ErrPaymentMethodIsRequired
	}
	o.paymentMethod = method
	return nil
}

func (o *Order) setCustomerLocation(l *kernel.Location) error {
	if l == nil {
		return nil
	}
	if err := l.Validate(); err != nil {
		return err
	}
	c := *l
	o.customerLocation = &c
	return nil
}

func (o *Order) setRecords(records []TrackingRecord) error {
	if len(records) == 0 {
		return errs.NewValueIsRequiredError("tracking records")
	}
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b TrackingRecord) int {
		return a.sequence - b.sequence
	})
	if latest := sorted[len(sorted)-1]; latest.status != o.status {
		return errs.NewValueIsInvalidErrorWithCause(
			ErrHistoryIsInconsistent.ParamName,
			fmt.Errorf("latest record is %s, order is %s", latest.status, o.status),
		)
	}
	o.records = sorted
	return nil
}
