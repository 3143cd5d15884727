package order

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
)

// TrackingRecord is an append-only audit entry written by every successful
// transition. Records are never mutated; Sequence orders records that share a
// timestamp.
type TrackingRecord struct {
	id       kernel.UUID
	orderID  kernel.UUID
	sequence int
	status   Status
	location string
	notes    string
	actor    Actor
	at       time.Time
}

// RestoreTrackingRecord rebuilds a persisted record.
func RestoreTrackingRecord(
	id, orderID kernel.UUID,
	sequence int,
	status Status,
	location, notes string,
	actor Actor,
	at time.Time,
) (TrackingRecord, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), status.Validate(), actor.Validate()); err != nil {
		return TrackingRecord{}, err
	}

	return TrackingRecord{
		id:       id,
		orderID:  orderID,
		sequence: sequence,
		status:   status,
		location: location,
		notes:    notes,
		actor:    actor,
		at:       at.UTC(),
	}, nil
}

func (r TrackingRecord) ID() kernel.UUID      { return r.id }
func (r TrackingRecord) OrderID() kernel.UUID { return r.orderID }
func (r TrackingRecord) Sequence() int        { return r.sequence }
func (r TrackingRecord) Status() Status       { return r.status }

// Location is free text such as "kitchen pass" or "driver en route"; empty when absent.
func (r TrackingRecord) Location() string { return r.location }

// Notes is free text; empty when absent.
func (r TrackingRecord) Notes() string { return r.notes }
func (r TrackingRecord) Actor() Actor  { return r.actor }
func (r TrackingRecord) At() time.Time { return r.at }
