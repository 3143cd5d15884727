package services

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"dispatch/internal/core/domain/model/catalog"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// PricedLine is one cart line after its unit price has been resolved.
type PricedLine struct {
	UnitPrice kernel.Money
	Quantity  int
	// WeightKg is the weight of one unit; zero means the line does not ship.
	WeightKg decimal.Decimal
}

// TotalsInput carries the order-level pricing parameters. Rates and the
// discount arrive as decimal text from optional upstream fields; text that
// does not parse counts as zero.
type TotalsInput struct {
	TaxRate        string
	ServiceFeeRate string
	Discount       string
	From           Zone
	To             Zone
	Method         Method
}

// Totals is the result of ComputeOrderTotals. Every component is rounded to
// cents and Total = Subtotal + Shipping + Tax + ServiceFee - Discount exactly.
type Totals struct {
	Subtotal   kernel.Money
	Shipping   kernel.Money
	Tax        kernel.Money
	ServiceFee kernel.Money
	Discount   kernel.Money
	Total      kernel.Money
	// DiscountCapped is set when the requested discount exceeded the gross
	// amount and was reduced to it.
	DiscountCapped bool
}

// Breakdown converts the totals into the value persisted on an order.
func (t Totals) Breakdown() (order.Breakdown, error) {
	return order.NewBreakdown(t.Subtotal, t.Shipping, t.ServiceFee, t.Tax, t.Discount)
}

// PriceEngine resolves catalog prices and computes order totals. It holds no
// state and never writes to catalog items.
//
// Rounding happens once per component at the end of ComputeOrderTotals,
// half-up to two digits; intermediate sums keep full precision.
type PriceEngine struct{}

func NewPriceEngine() PriceEngine {
	return PriceEngine{}
}

// ResolveUnitPrice picks effective price, then discount price, then base
// price. Effective price wins even when it exceeds the base price.
func (PriceEngine) ResolveUnitPrice(item catalog.Item) (kernel.Money, error) {
	field, raw := "price", item.Price
	switch {
	case item.HasEffectivePrice():
		field, raw = "effective price", *item.EffectivePrice
	case item.HasDiscountPrice():
		field, raw = "discount price", *item.DiscountPrice
	}

	price, err := kernel.ParseMoney(raw)
	if err != nil {
		return kernel.Money{}, NewInvalidPriceError(field, raw, "is not a number")
	}
	if price.IsNegative() {
		return kernel.Money{}, NewInvalidPriceError(field, raw, "is negative")
	}
	if err := price.CheckRange(field); err != nil {
		return kernel.Money{}, err
	}
	return price, nil
}

// ComputeLineSubtotal returns unitPrice * quantity without rounding.
func (PriceEngine) ComputeLineSubtotal(unitPrice kernel.Money, quantity int) (kernel.Money, error) {
	if quantity <= 0 {
		return kernel.Money{}, NewInvalidQuantityError(quantity)
	}
	subtotal := unitPrice.MulInt(quantity)
	if err := subtotal.CheckRange("line subtotal"); err != nil {
		return kernel.Money{}, err
	}
	return subtotal, nil
}

// ComputeOrderTotals sums line subtotals and per-parcel shipping, applies tax
// and service fee on the subtotal, and subtracts the discount. A nil policy
// charges no shipping.
func (e PriceEngine) ComputeOrderTotals(lines []PricedLine, policy ShippingPolicy, in TotalsInput) (Totals, error) {
	if policy == nil {
		policy = FlatFreePolicy{}
	}

	taxRate, err := parseNonNegative("tax rate", in.TaxRate)
	if err != nil {
		return Totals{}, err
	}
	serviceRate, err := parseNonNegative("service fee rate", in.ServiceFeeRate)
	if err != nil {
		return Totals{}, err
	}
	discount, err := parseNonNegative("discount", in.Discount)
	if err != nil {
		return Totals{}, err
	}

	subtotal, shipping := kernel.Zero(), kernel.Zero()
	for _, line := range lines {
		lineSubtotal, err := e.ComputeLineSubtotal(line.UnitPrice, line.Quantity)
		if err != nil {
			return Totals{}, err
		}
		subtotal = subtotal.Add(lineSubtotal)

		if !line.WeightKg.IsPositive() {
			continue
		}
		fee, err := policy.Fee(line.WeightKg, in.From, in.To, in.Method)
		if err != nil {
			return Totals{}, err
		}
		shipping = shipping.Add(fee.MulInt(line.Quantity))
	}

	tax := subtotal.Mul(taxRate)
	service := subtotal.Mul(serviceRate)

	t := Totals{
		Subtotal:   subtotal.Round(),
		Shipping:   shipping.Round(),
		Tax:        tax.Round(),
		ServiceFee: service.Round(),
		Discount:   kernel.MoneyFromDecimal(discount).Round(),
	}

	gross := t.Subtotal.Add(t.Shipping).Add(t.Tax).Add(t.ServiceFee)
	if t.Discount.Cmp(gross) > 0 {
		t.Discount = gross
		t.DiscountCapped = true
	}
	t.Total = gross.Sub(t.Discount)

	for name, m := range map[string]kernel.Money{
		"subtotal": t.Subtotal, "shipping": t.Shipping, "tax": t.Tax,
		"service fee": t.ServiceFee, "total": t.Total,
	} {
		if err := m.CheckRange(name); err != nil {
			return Totals{}, err
		}
	}

	return t, nil
}

// WeightFromFloat converts a catalog weight. Non-finite weights are an
// ArithmeticError; negative ones are treated as zero, which does not ship.
func WeightFromFloat(kg float64) (decimal.Decimal, error) {
	if math.IsNaN(kg) || math.IsInf(kg, 0) {
		return decimal.Decimal{}, kernel.NewArithmeticError("weight", fmt.Sprintf("%v is not finite", kg))
	}
	if kg <= 0 {
		return decimal.Zero, nil
	}
	return decimal.NewFromFloat(kg), nil
}

func parseNonNegative(field, raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, nil //nolint:nilerr // unparseable optional input counts as zero
	}
	if d.IsNegative() {
		return decimal.Decimal{}, NewInvalidPriceError(field, raw, "is negative")
	}
	return d, nil
}
