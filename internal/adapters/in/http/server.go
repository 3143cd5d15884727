// Package http exposes the dispatch core as a JSON API on echo. Routing,
// parameter binding and wire models come from internal/generated/servers.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
	echoSwagger "github.com/swaggo/echo-swagger"
)

var _ servers.ServerInterface = (*Server)(nil)

// Handlers groups the use cases the server routes to.
type Handlers struct {
	RegisterRestaurant    commands.RegisterRestaurantCommandHandler
	PlaceOrder            commands.PlaceOrderCommandHandler
	AdvanceStatus         commands.AdvanceStatusCommandHandler
	DispatchOrder         commands.DispatchOrderCommandHandler
	CreateDriver          commands.CreateDriverCommandHandler
	UpdateDriverLocation  commands.UpdateDriverLocationCommandHandler
	SetDriverAvailability commands.SetDriverAvailabilityCommandHandler

	GetOrder            queries.GetOrderQueryHandler
	GetOrderHistory     queries.GetOrderHistoryQueryHandler
	GetAvailableDrivers queries.GetAvailableDriversQueryHandler
}

// Server implements servers.ServerInterface by translating requests into
// commands and queries.
type Server struct {
	handlers       Handlers
	currencySymbol string
	logger         *slog.Logger
}

func NewServer(handlers Handlers, currencySymbol string, logger *slog.Logger) *Server {
	return &Server{
		handlers:       handlers,
		currencySymbol: currencySymbol,
		logger:         logger.With("component", "http"),
	}
}

// Register mounts the generated routes behind request validation, plus the
// swagger UI at /swagger/.
func (s *Server) Register(e *echo.Echo) error {
	doc, err := servers.GetSwagger()
	if err != nil {
		return fmt.Errorf("load openapi document: %w", err)
	}
	if err = registerDocs(doc); err != nil {
		return err
	}

	validator, err := NewRequestValidator(doc)
	if err != nil {
		return err
	}
	e.Use(validator)

	servers.RegisterHandlers(e, s)
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return nil
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, servers.Health{Status: "ok"})
}

// RegisterRestaurant handles PUT /api/v1/restaurants/{id}, the menu
// collaborator's sync of ordering terms.
func (s *Server) RegisterRestaurant(ctx echo.Context, id openapi_types.UUID) error {
	restaurantID, err := kernelID(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.RegisterRestaurantJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx)
	}

	cmd, err := commands.NewRegisterRestaurantCommand(
		restaurantID, body.Name, value(body.MinimumOrder), value(body.ClientScope), value(body.Zone),
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.RegisterRestaurant.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func kernelID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func value[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
