package driver

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Availability is the dispatch-facing state of a driver.
//
//	offline <──> available ──MarkBusy──> busy ──Release──> available
//
// A busy driver cannot go offline until released.
type Availability int

const (
	AvailabilityUnknown Availability = iota
	Available
	Busy
	Offline
)

func getAvailabilityNames() map[Availability]string {
	return map[Availability]string{
		AvailabilityUnknown: "unknown",
		Available:           "available",
		Busy:                "busy",
		Offline:             "offline",
	}
}

func ParseAvailability(name string) (Availability, error) {
	for a, n := range getAvailabilityNames() {
		if n == name && a != AvailabilityUnknown {
			return a, nil
		}
	}
	return AvailabilityUnknown, errs.NewValueIsInvalidErrorWithCause(
		"availability",
		fmt.Errorf("%q is not a known availability", name),
	)
}

func (a Availability) Validate() error {
	switch a {
	case Available, Busy, Offline:
		return nil
	case AvailabilityUnknown:
	}
	return errs.NewValueIsInvalidErrorWithCause("availability", fmt.Errorf("%d is not a valid availability", int(a)))
}

func (a Availability) String() string {
	if name, ok := getAvailabilityNames()[a]; ok {
		return name
	}
	return "unknown"
}

// VehicleType is what the driver delivers with.
type VehicleType string

const (
	Bicycle    VehicleType = "bicycle"
	Motorcycle VehicleType = "motorcycle"
	Car        VehicleType = "car"
	Van        VehicleType = "van"
)

func ParseVehicleType(name string) (VehicleType, error) {
	v := VehicleType(name)
	if err := v.Validate(); err != nil {
		return "", err
	}
	return v, nil
}

func (v VehicleType) Validate() error {
	switch v {
	case Bicycle, Motorcycle, Car, Van:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("vehicle type", fmt.Errorf("%q is not a known vehicle type", string(v)))
}
