package ports

import (
	"context"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver aggregates.
type DriverRepository interface {
	// Add persists a new driver.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Update persists changes under the same optimistic version rule as
	// OrderRepository.Update.
	Update(ctx context.Context, aggregate *driver.Driver) error

	// Get loads a driver. Missing drivers yield an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// ListAvailable returns the available drivers of a client scope. An empty
	// scope lists every available driver.
	ListAvailable(ctx context.Context, clientScope string) ([]*driver.Driver, error)
}
