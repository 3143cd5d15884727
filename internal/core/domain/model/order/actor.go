package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// ActorKind names who performed a transition.
type ActorKind string

const (
	ActorCustomer   ActorKind = "customer"
	ActorRestaurant ActorKind = "restaurant"
	ActorDriver     ActorKind = "driver"
	ActorSystem     ActorKind = "system"
)

// Actor identifies the party behind a tracking record. ID is an opaque
// reference owned by the authentication collaborator.
type Actor struct {
	Kind ActorKind
	ID   string
}

// SystemActor is used for transitions the core performs on its own, such as
// automatic dispatch.
func SystemActor() Actor {
	return Actor{Kind: ActorSystem, ID: "dispatch"}
}

func (a Actor) Validate() error {
	switch a.Kind {
	case ActorCustomer, ActorRestaurant, ActorDriver, ActorSystem:
	default:
		return errs.NewValueIsInvalidErrorWithCause("actor", fmt.Errorf("%q is not a known actor kind", a.Kind))
	}
	if a.ID == "" {
		return errs.NewValueIsRequiredError("actor id")
	}
	return nil
}

func (a Actor) String() string {
	return string(a.Kind) + ":" + a.ID
}
