// Package commands contains the write side of the dispatch core. Every
// handler validates its command, owns one unit of work per step, and commits
// or rolls back as a whole.
package commands

import (
	"context"

	"dispatch/internal/core/ports"
)

// Unit of Work views narrowed to what each handler touches.
type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	RestaurantRepoFactory interface {
		RestaurantRepository() ports.RestaurantRepository
	}

	// PlaceOrderUoW reads restaurant terms and writes the new order.
	PlaceOrderUoW interface {
		TxManager
		OrderRepoFactory
		RestaurantRepoFactory
	}

	PlaceOrderUoWFactory interface {
		Create() PlaceOrderUoW
	}

	// RestaurantUoW stores terms synced from the menu collaborator.
	RestaurantUoW interface {
		TxManager
		RestaurantRepoFactory
	}

	RestaurantUoWFactory interface {
		Create() RestaurantUoW
	}

	// DriverUoW is used by driver self-service commands.
	DriverUoW interface {
		TxManager
		DriverRepoFactory
	}

	DriverUoWFactory interface {
		Create() DriverUoW
	}

	// UoW spans orders and drivers, for transitions and dispatch.
	//
	//   uow := factory.Create()
	//   if err := uow.Begin(ctx); err != nil {
	//       return err
	//   }
	//   defer func() { _ = uow.Rollback(ctx) }()
	//
	//   // ... orders and drivers
	//
	//   return uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		DriverRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
