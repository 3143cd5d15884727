package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Events recorded by
// aggregates saved through its repositories are published only after a
// successful Commit.
type UnitOfWork interface {
	// Begin starts a transaction.
	Begin(ctx context.Context) error

	// Commit commits the transaction and then publishes pending events.
	Commit(ctx context.Context) error

	// Rollback discards the transaction and its pending events. After Commit
	// it returns an error that deferred callers ignore.
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	DriverRepository() DriverRepository
	RestaurantRepository() RestaurantRepository
}
