// Package ports defines the contracts between the dispatch core and its
// infrastructure: repositories, the unit of work, the clock and the event
// publisher.
package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates,
// including their line items and tracking records.
type OrderRepository interface {
	// Add persists a new order. The order must not exist yet.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order. It fails with a
	// ConcurrentModificationError when the stored version is not the
	// aggregate's PersistedVersion, and marks the aggregate persisted on
	// success. New tracking records are appended; stored ones are never
	// rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get loads an order with its full history. Missing orders yield an
	// errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// ListReady returns up to limit orders left in ready without a driver,
	// oldest first.
	ListReady(ctx context.Context, limit int) ([]*order.Order, error)
}
