package order

import (
	"fmt"
	"slices"

	"dispatch/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
//	pending ─> accepted ─> preparing ─> ready ─> assigned ─> out_for_delivery ─> delivered
//	   │          │            │          │          │               │
//	   └──────────┴────────────┴──────────┴──────────┴───────────────┴──> cancelled
//
// delivered and cancelled are terminal. Re-entering the current state is
// never legal.
type Status int

const (
	// Unknown is the zero value and never a legal state.
	Unknown Status = iota
	Pending
	Accepted
	Preparing
	Ready
	Assigned
	OutForDelivery
	Delivered
	Cancelled
)

func getStatusNames() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Pending:        "pending",
		Accepted:       "accepted",
		Preparing:      "preparing",
		Ready:          "ready",
		Assigned:       "assigned",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
	}
}

// getTransitions is the single source of truth for legal moves.
func getTransitions() map[Status][]Status {
	//nolint:exhaustive // Unknown has no row on purpose
	return map[Status][]Status{
		Pending:        {Accepted, Cancelled},
		Accepted:       {Preparing, Cancelled},
		Preparing:      {Ready, Cancelled},
		Ready:          {Assigned, Cancelled},
		Assigned:       {OutForDelivery, Cancelled},
		OutForDelivery: {Delivered, Cancelled},
		Delivered:      {},
		Cancelled:      {},
	}
}

// AllStatuses lists every legal state in lifecycle order.
func AllStatuses() []Status {
	return []Status{Pending, Accepted, Preparing, Ready, Assigned, OutForDelivery, Delivered, Cancelled}
}

// ParseStatus maps a persisted or wire name back to a Status.
func ParseStatus(name string) (Status, error) {
	for s, n := range getStatusNames() {
		if n == name && s != Unknown {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a known status", name))
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if _, ok := getTransitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", int(s)))
	}
	return nil
}

func (s Status) String() string {
	if name, ok := getStatusNames()[s]; ok {
		return name
	}
	return "unknown"
}

// AllowedTransitions returns a copy of the states reachable in one hop.
func (s Status) AllowedTransitions() []Status {
	return slices.Clone(getTransitions()[s])
}

// CanTransitionTo reports whether target is in the allowed set of s.
func (s Status) CanTransitionTo(target Status) bool {
	return slices.Contains(getTransitions()[s], target)
}

// IsTerminal reports a state with no outgoing transitions.
func (s Status) IsTerminal() bool {
	next, ok := getTransitions()[s]
	return ok && len(next) == 0
}

// ValidateTransition returns an IllegalTransitionError unless s -> target is
// in the transition table.
func (s Status) ValidateTransition(target Status) error {
	if err := target.Validate(); err != nil {
		return NewIllegalTransitionError(s, target, "target status is invalid")
	}
	if !s.CanTransitionTo(target) {
		return NewIllegalTransitionError(s, target, "transition is not allowed")
	}
	return nil
}

// ValidateCanHaveDriver checks the status/driver consistency rule: a driver
// reference exists from assigned onwards, may be kept on cancellation, and
// never exists before ready.
func (s Status) ValidateCanHaveDriver(hasDriver bool) error {
	switch s {
	case Assigned, OutForDelivery, Delivered:
		if !hasDriver {
			return errs.NewValueIsInvalidErrorWithCause(
				"status is invalid",
				fmt.Errorf("%s is not a valid status to have no driver", s),
			)
		}
	case Pending, Accepted, Preparing:
		if hasDriver {
			return errs.NewValueIsInvalidErrorWithCause(
				"status is invalid",
				fmt.Errorf("%s is not a valid status to have a driver", s),
			)
		}
	case Unknown, Ready, Cancelled:
	}
	return nil
}
