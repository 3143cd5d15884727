package driver

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

var (
	// ErrDriverNotAvailable is the sentinel behind DriverNotAvailableError.
	ErrDriverNotAvailable = errors.New("driver is not available")

	// ErrDriverIsNotConstructed is returned for a Driver not built by NewDriver or RestoreDriver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver or RestoreDriver constructor")

	ErrNameIsRequired  = errs.NewValueIsRequiredError("name")
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	ErrDriverIsBusy    = errs.NewValueIsInvalidError("driver is busy with an order")
	ErrDriverIsNotBusy = errs.NewValueIsInvalidError("driver has no order to release")
)

// DriverNotAvailableError reports that a driver selected for dispatch was no
// longer available when the assignment was attempted.
type DriverNotAvailableError struct {
	DriverID     kernel.UUID
	Availability Availability
}

func NewDriverNotAvailableError(id kernel.UUID, availability Availability) *DriverNotAvailableError {
	return &DriverNotAvailableError{DriverID: id, Availability: availability}
}

func (e *DriverNotAvailableError) Error() string {
	return fmt.Sprintf("%s: %s is %s", ErrDriverNotAvailable, e.DriverID, e.Availability)
}

func (e *DriverNotAvailableError) Unwrap() error {
	return ErrDriverNotAvailable
}
