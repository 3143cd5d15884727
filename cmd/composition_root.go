package cmd

import (
	"log/slog"

	"dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/clock"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/ports"
	"dispatch/internal/jobs"
	"dispatch/internal/pkg/keylock"
)

// CompositionRoot builds handlers over one unit of work factory. The order
// and driver locks are shared by every handler it creates, so transitions,
// dispatch and driver updates in this process serialize on the same keys.
type CompositionRoot struct {
	config      Config
	uowFactory  ports.UnitOfWorkFactory
	orderLocks  *keylock.Locker
	driverLocks *keylock.Locker
	clock       ports.Clock
	pricing     commands.Pricing
	logger      *slog.Logger
}

func NewCompositionRoot(config Config, uowFactory ports.UnitOfWorkFactory, logger *slog.Logger) (CompositionRoot, error) {
	shipping, err := config.ShippingPolicy()
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		config:      config,
		uowFactory:  uowFactory,
		orderLocks:  keylock.New(),
		driverLocks: keylock.New(),
		clock:       clock.System{},
		pricing: commands.Pricing{
			TaxRate:        config.TaxRate,
			ServiceFeeRate: config.ServiceFeeRate,
			Shipping:       shipping,
		},
		logger: logger,
	}, nil
}

// WithClock replaces the system clock.
func (c CompositionRoot) WithClock(clk ports.Clock) CompositionRoot {
	c.clock = clk
	return c
}

func (c *CompositionRoot) CreateRegisterRestaurantCommandHandler() commands.RegisterRestaurantCommandHandler {
	var f commands.RestaurantUoWFactory = FuncRestaurantUoWFactory(func() commands.RestaurantUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterRestaurantCommandHandler(f)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.PlaceOrderUoWFactory = FuncPlaceOrderUoWFactory(func() commands.PlaceOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.clock, c.pricing)
}

func (c *CompositionRoot) CreateAdvanceStatusCommandHandler() commands.AdvanceStatusCommandHandler {
	return commands.NewAdvanceStatusCommandHandler(c.uowFactoryAdapter(), c.orderLocks, c.driverLocks, c.clock)
}

func (c *CompositionRoot) CreateDispatchOrderCommandHandler() commands.DispatchOrderCommandHandler {
	return commands.NewDispatchOrderCommandHandler(c.uowFactoryAdapter(), c.orderLocks, c.driverLocks, c.clock)
}

func (c *CompositionRoot) CreateCreateDriverCommandHandler() commands.CreateDriverCommandHandler {
	return commands.NewCreateDriverCommandHandler(c.driverUoWFactory())
}

func (c *CompositionRoot) CreateUpdateDriverLocationCommandHandler() commands.UpdateDriverLocationCommandHandler {
	return commands.NewUpdateDriverLocationCommandHandler(c.driverUoWFactory(), c.driverLocks)
}

func (c *CompositionRoot) CreateSetDriverAvailabilityCommandHandler() commands.SetDriverAvailabilityCommandHandler {
	return commands.NewSetDriverAvailabilityCommandHandler(c.driverUoWFactory(), c.driverLocks)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateGetOrderHistoryQueryHandler() queries.GetOrderHistoryQueryHandler {
	return queries.NewGetOrderHistoryQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateGetAvailableDriversQueryHandler() queries.GetAvailableDriversQueryHandler {
	return queries.NewGetAvailableDriversQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(http.Handlers{
		RegisterRestaurant:    c.CreateRegisterRestaurantCommandHandler(),
		PlaceOrder:            c.CreatePlaceOrderCommandHandler(),
		AdvanceStatus:         c.CreateAdvanceStatusCommandHandler(),
		DispatchOrder:         c.CreateDispatchOrderCommandHandler(),
		CreateDriver:          c.CreateCreateDriverCommandHandler(),
		UpdateDriverLocation:  c.CreateUpdateDriverLocationCommandHandler(),
		SetDriverAvailability: c.CreateSetDriverAvailabilityCommandHandler(),
		GetOrder:              c.CreateGetOrderQueryHandler(),
		GetOrderHistory:       c.CreateGetOrderHistoryQueryHandler(),
		GetAvailableDrivers:   c.CreateGetAvailableDriversQueryHandler(),
	}, c.config.CurrencySymbol, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	job := jobs.NewDispatchRetryJob(
		c.uowFactory,
		c.CreateDispatchOrderCommandHandler(),
		c.config.DispatchRetrySchedule,
		c.config.DispatchRetryBatchSize,
		c.logger,
	)
	return jobs.NewJobManager(job)
}

func (c *CompositionRoot) uowFactoryAdapter() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) driverUoWFactory() commands.DriverUoWFactory {
	return FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
}

type FuncRestaurantUoWFactory func() commands.RestaurantUoW

func (f FuncRestaurantUoWFactory) Create() commands.RestaurantUoW {
	return f()
}

type FuncPlaceOrderUoWFactory func() commands.PlaceOrderUoW

func (f FuncPlaceOrderUoWFactory) Create() commands.PlaceOrderUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
