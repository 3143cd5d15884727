package services

import (
	"math"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// DispatchMatcher is a domain service that selects the nearest available
// driver for an order and performs the assignment.
//
// Key responsibilities:
//   - Filtering the candidate pool to available drivers with a known location
//   - Ranking candidates by great-circle distance from the order origin
//   - Re-checking availability when the assignment is made
//   - Releasing drivers when their order is delivered or cancelled
//
// Business rules:
//   - FindNearest is read-only; it never mutates the pool
//   - Ties on distance go to the lowest driver id
//   - Selection and assignment are separate steps, so Assign fails with
//     DriverNotAvailableError when the driver changed in between
//
// Example usage:
//
//	matcher := services.NewDispatchMatcher()
//	d, ok := matcher.FindNearest(o.CustomerLocation(), pool)
//	if !ok {
//	    // no driver available, leave the order ready
//	}
//	if err := matcher.Assign(o, d); err != nil {
//	    // lost the race
//	}
type DispatchMatcher struct{}

// NewDispatchMatcher creates a new DispatchMatcher instance.
func NewDispatchMatcher() DispatchMatcher {
	return DispatchMatcher{}
}

// FindNearest returns the available driver closest to origin. It returns
// false when origin is nil or invalid, and when no candidate is available
// with a known location.
func (DispatchMatcher) FindNearest(origin *kernel.Location, pool []*driver.Driver) (*driver.Driver, bool) {
	if origin == nil || origin.Validate() != nil {
		return nil, false
	}

	var (
		best     *driver.Driver
		bestDist = math.Inf(1)
	)

	for _, d := range pool {
		if d.Validate() != nil || !d.IsAvailable() {
			continue
		}
		loc := d.Location()
		if loc == nil {
			continue
		}

		dist, err := origin.DistanceKm(*loc)
		if err != nil {
			continue
		}

		switch {
		case dist < bestDist:
			best, bestDist = d, dist
		case dist == bestDist && d.ID().Compare(best.ID()) < 0:
			best = d
		}
	}

	return best, best != nil
}

// Assign attaches d to o and marks d busy. Both aggregates are validated
// before either is touched; o is only mutated once d is known to be free.
func (DispatchMatcher) Assign(o *order.Order, d *driver.Driver) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := d.Validate(); err != nil {
		return err
	}
	if !d.IsAvailable() {
		return driver.NewDriverNotAvailableError(d.ID(), d.Availability())
	}

	if err := o.AttachDriver(d.ID()); err != nil {
		return err
	}
	return d.MarkBusy(o.ID())
}

// Release hands d back to the pool. The completed-delivery count grows only
// when delivered is true.
func (DispatchMatcher) Release(d *driver.Driver, delivered bool) error {
	if err := d.Validate(); err != nil {
		return err
	}
	return d.Release(delivered)
}
