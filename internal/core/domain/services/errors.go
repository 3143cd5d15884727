package services

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPrice is the sentinel behind InvalidPriceError.
	ErrInvalidPrice = errors.New("invalid price")
	// ErrInvalidQuantity is the sentinel behind InvalidQuantityError.
	ErrInvalidQuantity = errors.New("invalid quantity")
)

// InvalidPriceError reports a resolved price, rate or discount that is
// negative, or a price that does not parse.
type InvalidPriceError struct {
	Field  string
	Value  string
	Reason string
}

func NewInvalidPriceError(field, value, reason string) *InvalidPriceError {
	return &InvalidPriceError{Field: field, Value: value, Reason: reason}
}

func (e *InvalidPriceError) Error() string {
	return fmt.Sprintf("%s: %s %q %s", ErrInvalidPrice, e.Field, e.Value, e.Reason)
}

func (e *InvalidPriceError) Unwrap() error {
	return ErrInvalidPrice
}

// InvalidQuantityError reports a line quantity that is not a positive integer.
type InvalidQuantityError struct {
	Quantity int
}

func NewInvalidQuantityError(quantity int) *InvalidQuantityError {
	return &InvalidQuantityError{Quantity: quantity}
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("%s: %d is not greater than 0", ErrInvalidQuantity, e.Quantity)
}

func (e *InvalidQuantityError) Unwrap() error {
	return ErrInvalidQuantity
}
