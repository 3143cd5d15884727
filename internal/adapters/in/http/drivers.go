package http

import (
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// CreateDriver handles POST /api/v1/drivers.
func (s *Server) CreateDriver(ctx echo.Context) error {
	var body servers.CreateDriverJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx)
	}

	vehicle, err := driver.ParseVehicleType(body.Vehicle)
	if err != nil {
		return s.fail(ctx, err)
	}

	location, err := optionalLocation(body.Location)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewCreateDriverCommand(
		kernel.NewUUID(), body.Name, value(body.Phone), vehicle, value(body.ClientScope), location, value(body.Online),
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	d, err := s.handlers.CreateDriver.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, newDriver(queries.NewDriverView(d)))
}

// UpdateDriverLocation handles PUT /api/v1/drivers/{id}/location.
func (s *Server) UpdateDriverLocation(ctx echo.Context, id openapi_types.UUID) error {
	driverID, err := kernelID(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.UpdateDriverLocationJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx)
	}

	location, err := locationToDomain(body)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewUpdateDriverLocationCommand(driverID, location)
	if err != nil {
		return s.fail(ctx, err)
	}

	d, err := s.handlers.UpdateDriverLocation.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newDriver(queries.NewDriverView(d)))
}

// SetDriverAvailability handles PUT /api/v1/drivers/{id}/availability.
func (s *Server) SetDriverAvailability(ctx echo.Context, id openapi_types.UUID) error {
	driverID, err := kernelID(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.SetDriverAvailabilityJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx)
	}

	cmd, err := commands.NewSetDriverAvailabilityCommand(driverID, body.Online)
	if err != nil {
		return s.fail(ctx, err)
	}

	d, err := s.handlers.SetDriverAvailability.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newDriver(queries.NewDriverView(d)))
}

// GetAvailableDrivers handles GET /api/v1/drivers/available.
func (s *Server) GetAvailableDrivers(ctx echo.Context, params servers.GetAvailableDriversParams) error {
	query := queries.NewGetAvailableDriversQuery(value(params.ClientScope))

	drivers, err := s.handlers.GetAvailableDrivers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Driver, len(drivers))
	for i, d := range drivers {
		response[i] = newDriver(d)
	}
	return ctx.JSON(http.StatusOK, response)
}
