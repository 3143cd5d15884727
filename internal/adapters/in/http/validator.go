package http

import (
	"errors"
	"fmt"
	"net/http"

	"dispatch/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
)

// NewRequestValidator rejects requests that do not match doc with 400.
// Paths the document does not describe, such as the swagger UI, pass through
// to echo's own routing.
func NewRequestValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	// Paths are matched as written; the document's server list would otherwise
	// require a host match.
	doc.Servers = nil

	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()

			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				return next(ctx)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
			}
			if err = openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return ctx.JSON(http.StatusBadRequest, servers.Error{
					Code:    http.StatusBadRequest,
					Message: validationMessage(err),
				})
			}

			return next(ctx)
		}
	}, nil
}

func validationMessage(err error) string {
	var requestErr *openapi3filter.RequestError
	if errors.As(err, &requestErr) {
		return requestErr.Error()
	}
	return "Invalid request"
}
