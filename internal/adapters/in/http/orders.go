package http

import (
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// PlaceOrder handles POST /api/v1/orders.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var body servers.PlaceOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx)
	}

	cmd, err := placeOrderCommand(body)
	if err != nil {
		return s.fail(ctx, err)
	}

	o, err := s.handlers.PlaceOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, s.newOrder(queries.NewOrderView(o)))
}

// GetOrder handles GET /api/v1/orders/{id}.
func (s *Server) GetOrder(ctx echo.Context, id openapi_types.UUID) error {
	orderID, err := kernelID(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, s.newOrder(view))
}

// GetOrderHistory handles GET /api/v1/orders/{id}/history, newest first.
func (s *Server) GetOrderHistory(ctx echo.Context, id openapi_types.UUID) error {
	orderID, err := kernelID(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetOrderHistoryQuery(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	history, err := s.handlers.GetOrderHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.TrackingRecord, len(history))
	for i, r := range history {
		response[i] = newTrackingRecord(r)
	}
	return ctx.JSON(http.StatusOK, response)
}

// AdvanceStatus handles POST /api/v1/orders/{id}/status.
func (s *Server) AdvanceStatus(ctx echo.Context, id openapi_types.UUID) error {
	orderID, err := kernelID(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body servers.AdvanceStatusJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx)
	}

	target, err := order.ParseStatus(string(body.Status))
	if err != nil {
		return s.fail(ctx, err)
	}

	actor := order.Actor{Kind: order.ActorKind(body.Actor.Kind), ID: body.Actor.Id}
	cmd, err := commands.NewAdvanceStatusCommand(orderID, target, actor, value(body.Location), value(body.Notes))
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.handlers.AdvanceStatus.Handle(ctx.Request().Context(), cmd)
	return s.respondTransition(ctx, result, err)
}

// DispatchOrder handles POST /api/v1/orders/{id}/dispatch, a system retry of
// driver assignment.
func (s *Server) DispatchOrder(ctx echo.Context, id openapi_types.UUID) error {
	orderID, err := kernelID(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewDispatchOrderCommand(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	result, err := s.handlers.DispatchOrder.Handle(ctx.Request().Context(), cmd)
	return s.respondTransition(ctx, result, err)
}

// respondTransition reports a committed transition even when the follow-up
// dispatch failed; the failure goes into dispatch_error.
func (s *Server) respondTransition(ctx echo.Context, result commands.AdvanceStatusResult, err error) error {
	if err != nil && result.Order == nil {
		return s.fail(ctx, err)
	}

	response := servers.Transition{
		Order:    s.newOrder(queries.NewOrderView(result.Order)),
		Dispatch: result.Dispatch.String(),
	}
	if err != nil {
		s.logger.WarnContext(ctx.Request().Context(), "dispatch after transition failed",
			"order_id", result.Order.ID().String(), "error", err)
		message := err.Error()
		response.DispatchError = &message
	}
	return ctx.JSON(http.StatusOK, response)
}
