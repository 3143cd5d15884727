package order

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
)

// StatusChanged is recorded by every successful transition, including the
// initial placement (From is Unknown then). It is published only after the
// unit of work that produced it commits.
type StatusChanged struct {
	EventID  kernel.UUID
	OrderID  kernel.UUID
	From     Status
	To       Status
	DriverID *kernel.UUID
	Actor    Actor
	At       time.Time
}

// EventType is the stable name used as a message header.
func (StatusChanged) EventType() string {
	return "order.status_changed"
}
