package order

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// LineItem is the snapshot of a catalog item taken when the order is placed.
// Later catalog changes never reach it.
type LineItem struct {
	id            kernel.UUID
	catalogItemID kernel.UUID
	name          string
	unitPrice     kernel.Money
	quantity      int
	subtotal      kernel.Money
	weightKg      decimal.Decimal
	note          string
}

// NewLineItem builds a line item and derives its subtotal as
// unitPrice * quantity without rounding.
func NewLineItem(
	id, catalogItemID kernel.UUID,
	name string,
	unitPrice kernel.Money,
	quantity int,
	weightKg decimal.Decimal,
	note string,
) (LineItem, error) {
	li := LineItem{note: note, weightKg: weightKg}

	if err := errors.Join(
		li.setID(id),
		li.setCatalogItemID(catalogItemID),
		li.setName(name),
		li.setUnitPrice(unitPrice),
		li.setQuantity(quantity),
	); err != nil {
		return LineItem{}, err
	}
	if weightKg.IsNegative() {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%s is negative", weightKg))
	}

	li.subtotal = unitPrice.MulInt(quantity)
	return li, nil
}

func (li LineItem) ID() kernel.UUID            { return li.id }
func (li LineItem) CatalogItemID() kernel.UUID { return li.catalogItemID }
func (li LineItem) Name() string               { return li.name }
func (li LineItem) UnitPrice() kernel.Money    { return li.unitPrice }
func (li LineItem) Quantity() int              { return li.quantity }
func (li LineItem) Subtotal() kernel.Money     { return li.subtotal }
func (li LineItem) WeightKg() decimal.Decimal  { return li.weightKg }
func (li LineItem) Note() string               { return li.note }

func (li *LineItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	li.id = id
	return nil
}

func (li *LineItem) setCatalogItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	li.catalogItemID = id
	return nil
}

func (li *LineItem) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("line item name")
	}
	li.name = name
	return nil
}

func (li *LineItem) setUnitPrice(price kernel.Money) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("unit price", fmt.Errorf("%s is negative", price))
	}
	li.unitPrice = price
	return nil
}

func (li *LineItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	li.quantity = quantity
	return nil
}
