package commands

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
)

var (
	// ErrEmptyCart is the sentinel behind EmptyCartError.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrItemUnavailable is the sentinel behind ItemUnavailableError.
	ErrItemUnavailable = errors.New("item is unavailable")
	// ErrBelowMinimumOrder is the sentinel behind BelowMinimumOrderError.
	ErrBelowMinimumOrder = errors.New("below minimum order")
)

// EmptyCartError reports a cart without lines.
type EmptyCartError struct{}

func (*EmptyCartError) Error() string { return ErrEmptyCart.Error() }
func (*EmptyCartError) Unwrap() error { return ErrEmptyCart }

// ItemUnavailableError reports a cart line whose catalog item is flagged
// unavailable.
type ItemUnavailableError struct {
	ItemID kernel.UUID
	Name   string
}

func NewItemUnavailableError(id kernel.UUID, name string) *ItemUnavailableError {
	return &ItemUnavailableError{ItemID: id, Name: name}
}

func (e *ItemUnavailableError) Error() string {
	return fmt.Sprintf("%s: %q (%s)", ErrItemUnavailable, e.Name, e.ItemID)
}

func (e *ItemUnavailableError) Unwrap() error { return ErrItemUnavailable }

// BelowMinimumOrderError reports a subtotal under the restaurant minimum.
type BelowMinimumOrderError struct {
	Minimum  kernel.Money
	Subtotal kernel.Money
}

func NewBelowMinimumOrderError(minimum, subtotal kernel.Money) *BelowMinimumOrderError {
	return &BelowMinimumOrderError{Minimum: minimum, Subtotal: subtotal}
}

func (e *BelowMinimumOrderError) Error() string {
	return fmt.Sprintf("%s: subtotal %s is less than %s", ErrBelowMinimumOrder, e.Subtotal, e.Minimum)
}

func (e *BelowMinimumOrderError) Unwrap() error { return ErrBelowMinimumOrder }
