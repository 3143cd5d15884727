// Package order implements the order lifecycle: the Status state machine, the
// Order aggregate with its line-item snapshot and monetary Breakdown, and the
// append-only TrackingRecord log written by every transition.
//
// Legal moves live in a single table (see Status). Order.Transition is the
// only way to change status; it validates against the table, appends exactly
// one record and records a StatusChanged event, or returns an
// IllegalTransitionError and leaves the order untouched.
//
//	o, _ := order.NewOrder(id, placement, order.Actor{Kind: order.ActorCustomer, ID: "c-1"}, now)
//	rec, err := o.Transition(order.Accepted, restaurant, "", "", now)
//	var ite *order.IllegalTransitionError
//	if errors.As(err, &ite) {
//	    // ite.From, ite.To
//	}
//
// A driver reference is attached with AttachDriver while the order is ready;
// it is a lookup key only and never ties driver and order lifetimes together.
package order
