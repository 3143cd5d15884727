package http

import (
	"errors"
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/generated/servers"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps the error taxonomy to a status code. State conflicts are
// checked before generic validation because some of them wrap
// errs.ErrValueIsInvalid.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, order.ErrIllegalTransition),
		errors.Is(err, ports.ErrConcurrentModification),
		errors.Is(err, driver.ErrDriverNotAvailable),
		errors.Is(err, driver.ErrDriverIsBusy),
		errors.Is(err, driver.ErrDriverIsNotBusy),
		errors.Is(err, order.ErrDriverAlreadyAttached):
		return http.StatusConflict
	case errors.Is(err, commands.ErrEmptyCart),
		errors.Is(err, commands.ErrItemUnavailable),
		errors.Is(err, commands.ErrBelowMinimumOrder),
		errors.Is(err, services.ErrInvalidPrice),
		errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, kernel.ErrArithmetic):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(ctx echo.Context, err error) error {
	code := statusFor(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method, "path", ctx.Path(), "error", err)
		message = "internal error"
	}
	return ctx.JSON(code, servers.Error{Code: code, Message: message})
}

func badRequest(ctx echo.Context) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: "Invalid request body",
	})
}
