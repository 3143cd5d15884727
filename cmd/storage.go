package cmd

import (
	"fmt"
	"log/slog"

	"dispatch/internal/adapters/out/inmemory"
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/adapters/out/postgres/driverrepo"
	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/adapters/out/postgres/restaurantrepo"
	"dispatch/internal/core/ports"

	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OpenStorage returns the unit of work factory for config.Storage and a
// function releasing its resources.
func OpenStorage(config Config, publisher ports.EventPublisher, logger *slog.Logger) (ports.UnitOfWorkFactory, func() error, error) {
	if config.Storage == StorageMemory {
		logger.Warn("using in-memory storage; state is lost on restart")
		return inmemory.NewUnitOfWorkFactory(inmemory.NewStore(), publisher, logger), func() error { return nil }, nil
	}

	db, err := gorm.Open(gorm_postgres.Open(config.DSN()), &gorm.Config{})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect database: %w", err)
	}
	if err = Migrate(db); err != nil {
		return nil, nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, err
	}
	return postgres.NewGormUnitOfWorkFactory(db, publisher, logger), sqlDB.Close, nil
}

// Migrate creates or updates every table the repositories use.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.LineItemDTO{},
		&orderrepo.TrackingRecordDTO{},
		&driverrepo.DriverDTO{},
		&restaurantrepo.RestaurantDTO{},
	); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}
