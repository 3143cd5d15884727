package order

import (
	"errors"
	"fmt"

	"dispatch/internal/pkg/errs"
)

var (
	// ErrIllegalTransition is the sentinel behind every IllegalTransitionError.
	ErrIllegalTransition = errors.New("illegal transition")

	// ErrOrderIsNotConstructed is returned for an Order not built by NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	ErrLineItemsAreRequired    = errs.NewValueIsRequiredError("line items")
	ErrPaymentMethodIsRequired = errs.NewValueIsRequiredError("payment method")
	ErrDriverAlreadyAttached   = errs.NewValueIsInvalidError("driver is already attached")
	ErrHistoryIsInconsistent   = errs.NewValueIsInvalidError("latest tracking record does not match status")
)

// IllegalTransitionError reports a requested move that is not in the
// transition table, or whose precondition does not hold. The order is left
// exactly as it was.
type IllegalTransitionError struct {
	From   Status
	To     Status
	Reason string
}

func NewIllegalTransitionError(from, to Status, reason string) *IllegalTransitionError {
	return &IllegalTransitionError{From: from, To: to, Reason: reason}
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s: %s", ErrIllegalTransition, e.From, e.To, e.Reason)
}

func (e *IllegalTransitionError) Unwrap() error {
	return ErrIllegalTransition
}
