package queries

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/guard"
)

var ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
	"GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery constructor",
)

// GetOrderHistoryQuery reads the tracking log of an order.
type GetOrderHistoryQuery struct {
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

func NewGetOrderHistoryQuery(orderID kernel.UUID) (GetOrderHistoryQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderHistoryQuery{}, err
	}
	return GetOrderHistoryQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}

func (q GetOrderHistoryQuery) OrderID() kernel.UUID { return q.orderID }

type GetOrderHistoryQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewGetOrderHistoryQueryHandler(uowFactory ports.UnitOfWorkFactory) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{uowFactory: uowFactory}
}

// Handle returns the records most recent first.
func (h GetOrderHistoryQueryHandler) Handle(ctx context.Context, query GetOrderHistoryQuery) ([]TrackingRecordView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	o, err := h.uowFactory.Create().OrderRepository().Get(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	history := o.History()
	views := make([]TrackingRecordView, 0, len(history))
	for _, r := range history {
		views = append(views, NewTrackingRecordView(r))
	}
	return views, nil
}
