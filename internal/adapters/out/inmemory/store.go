// Package inmemory is a process-local storage adapter. It keeps committed
// aggregate snapshots behind a mutex, stages writes per unit of work and
// applies them atomically on commit with the same optimistic version rules
// as the postgres adapter.
package inmemory

import (
	"slices"
	"sync"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
)

// Store holds committed state. It is safe for concurrent use and is shared
// by every UnitOfWork created from the same factory.
type Store struct {
	mu          sync.RWMutex
	orders      map[string]order.State
	drivers     map[string]driver.State
	restaurants map[string]ports.RestaurantTerms
}

func NewStore() *Store {
	return &Store{
		orders:      make(map[string]order.State),
		drivers:     make(map[string]driver.State),
		restaurants: make(map[string]ports.RestaurantTerms),
	}
}

// PutRestaurant seeds the terms the menu collaborator would provide.
func (s *Store) PutRestaurant(terms ports.RestaurantTerms) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.restaurants[terms.RestaurantID.String()] = terms
}

func orderState(o *order.Order) order.State {
	return order.State{
		ID: o.ID(),
		Placement: order.Placement{
			CustomerID:          o.CustomerID(),
			RestaurantID:        o.RestaurantID(),
			ClientScope:         o.ClientScope(),
			LineItems:           o.LineItems(),
			Breakdown:           o.Breakdown(),
			PaymentMethod:       o.PaymentMethod(),
			PaymentStatus:       o.PaymentStatus(),
			SpecialInstructions: o.SpecialInstructions(),
			CustomerLocation:    o.CustomerLocation(),
		},
		DriverID:  o.DriverID(),
		Status:    o.Status(),
		Records:   o.Records(),
		CreatedAt: o.CreatedAt(),
		UpdatedAt: o.UpdatedAt(),
		Version:   o.Version(),
	}
}

func driverState(d *driver.Driver) driver.State {
	return driver.State{
		ID:                  d.ID(),
		Name:                d.Name(),
		Phone:               d.Phone(),
		Vehicle:             d.Vehicle(),
		Availability:        d.Availability(),
		Location:            d.Location(),
		Rating:              d.Rating(),
		CompletedDeliveries: d.CompletedDeliveries(),
		ClientScope:         d.ClientScope(),
		CurrentOrderID:      d.CurrentOrderID(),
		Version:             d.Version(),
	}
}

// cloneOrderState detaches the slices so restored aggregates never share
// backing arrays with the store.
func cloneOrderState(s order.State) order.State {
	s.Placement.LineItems = slices.Clone(s.Placement.LineItems)
	s.Records = slices.Clone(s.Records)
	return s
}
