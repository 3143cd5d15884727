package order

import (
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// Breakdown is the persisted monetary summary of an order. Every component is
// already rounded to two fractional digits and
//
//	total = subtotal + deliveryFee + serviceCharge + tax - discount
//
// holds exactly.
type Breakdown struct {
	subtotal      kernel.Money
	deliveryFee   kernel.Money
	serviceCharge kernel.Money
	tax           kernel.Money
	discount      kernel.Money
	total         kernel.Money
}

// NewBreakdown derives the total from the components.
func NewBreakdown(subtotal, deliveryFee, serviceCharge, tax, discount kernel.Money) (Breakdown, error) {
	b := Breakdown{
		subtotal:      subtotal,
		deliveryFee:   deliveryFee,
		serviceCharge: serviceCharge,
		tax:           tax,
		discount:      discount,
	}
	b.total = subtotal.Add(deliveryFee).Add(serviceCharge).Add(tax).Sub(discount)

	if err := b.validate(); err != nil {
		return Breakdown{}, err
	}
	return b, nil
}

// RestoreBreakdown rebuilds a persisted breakdown and rejects one whose stored
// total disagrees with its components.
func RestoreBreakdown(subtotal, deliveryFee, serviceCharge, tax, discount, total kernel.Money) (Breakdown, error) {
	b, err := NewBreakdown(subtotal, deliveryFee, serviceCharge, tax, discount)
	if err != nil {
		return Breakdown{}, err
	}
	if !b.total.Equal(total) {
		return Breakdown{}, errs.NewValueIsInvalidErrorWithCause(
			"total",
			fmt.Errorf("stored %s does not match computed %s", total, b.total),
		)
	}
	return b, nil
}

func (b Breakdown) Subtotal() kernel.Money      { return b.subtotal }
func (b Breakdown) DeliveryFee() kernel.Money   { return b.deliveryFee }
func (b Breakdown) ServiceCharge() kernel.Money { return b.serviceCharge }
func (b Breakdown) Tax() kernel.Money           { return b.tax }
func (b Breakdown) Discount() kernel.Money      { return b.discount }
func (b Breakdown) Total() kernel.Money         { return b.total }

func (b Breakdown) validate() error {
	components := map[string]kernel.Money{
		"subtotal":       b.subtotal,
		"delivery fee":   b.deliveryFee,
		"service charge": b.serviceCharge,
		"tax":            b.tax,
		"discount":       b.discount,
	}
	for name, m := range components {
		if m.IsNegative() {
			return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%s is negative", m))
		}
	}
	if b.total.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("total", fmt.Errorf("%s is negative", b.total))
	}
	return nil
}
