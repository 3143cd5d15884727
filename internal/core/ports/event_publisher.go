package ports

import (
	"context"

	"dispatch/internal/core/domain/model/order"
)

// EventPublisher delivers committed order events to subscribers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...order.StatusChanged) error
}
