package queries

import (
	"context"
	"errors"
	"slices"
	"strings"

	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/guard"
)

var ErrGetAvailableDriversQueryIsNotConstructed = errors.New(
	"GetAvailableDriversQuery must be created via NewGetAvailableDriversQuery constructor",
)

// GetAvailableDriversQuery lists the available drivers of a client scope.
// An empty scope lists all of them.
type GetAvailableDriversQuery struct {
	clientScope string
	guard       guard.ConstructorGuard
}

func NewGetAvailableDriversQuery(clientScope string) GetAvailableDriversQuery {
	return GetAvailableDriversQuery{clientScope: clientScope, guard: guard.NewConstructorGuard()}
}

func (q GetAvailableDriversQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableDriversQueryIsNotConstructed)
}

func (q GetAvailableDriversQuery) ClientScope() string { return q.clientScope }

type GetAvailableDriversQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewGetAvailableDriversQueryHandler(uowFactory ports.UnitOfWorkFactory) GetAvailableDriversQueryHandler {
	return GetAvailableDriversQueryHandler{uowFactory: uowFactory}
}

// Handle returns drivers ordered by name, then id.
func (h GetAvailableDriversQueryHandler) Handle(ctx context.Context, query GetAvailableDriversQuery) ([]DriverView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	drivers, err := h.uowFactory.Create().DriverRepository().ListAvailable(ctx, query.ClientScope())
	if err != nil {
		return nil, err
	}

	views := make([]DriverView, 0, len(drivers))
	for _, d := range drivers {
		views = append(views, NewDriverView(d))
	}
	slices.SortFunc(views, func(a, b DriverView) int {
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return a.ID.Compare(b.ID)
	})
	return views, nil
}
