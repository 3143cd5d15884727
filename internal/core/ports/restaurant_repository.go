package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
)

// RestaurantTerms are the ordering terms a restaurant publishes through the
// menu collaborator.
type RestaurantTerms struct {
	RestaurantID kernel.UUID
	Name         string
	// MinimumOrder is nil when the restaurant has no minimum.
	MinimumOrder *kernel.Money
	// ClientScope selects the driver pool that serves the restaurant.
	ClientScope string
	// Zone is the shipping origin zone.
	Zone int
}

// DefaultRestaurantTerms apply to a restaurant whose terms were never synced:
// no minimum, origin zone 0 and the unscoped driver pool.
func DefaultRestaurantTerms(id kernel.UUID) RestaurantTerms {
	return RestaurantTerms{RestaurantID: id}
}

// RestaurantRepository holds restaurant terms. Save replaces the stored
// terms and is called only when the menu collaborator syncs them.
type RestaurantRepository interface {
	Get(ctx context.Context, id kernel.UUID) (RestaurantTerms, error)
	Save(ctx context.Context, terms RestaurantTerms) error
}
