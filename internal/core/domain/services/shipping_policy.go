package services

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// Zone is a numbered delivery zone. Zones are ordered so that neighbours
// differ by one.
type Zone int

// Method is a shipping method offered at checkout.
type Method string

const (
	MethodStandard Method = "standard"
	MethodExpress  Method = "express"
)

var (
	zoneFactorSame     = decimal.NewFromInt(1)
	zoneFactorAdjacent = decimal.RequireFromString("1.5")
	zoneFactorFar      = decimal.NewFromInt(2)
)

// ShippingPolicy prices a single parcel. Callers sum the result per unit.
type ShippingPolicy interface {
	Fee(weightKg decimal.Decimal, from, to Zone, method Method) (kernel.Money, error)
}

// FlatFreePolicy charges nothing. It is used when no shipping is configured.
type FlatFreePolicy struct{}

func (FlatFreePolicy) Fee(decimal.Decimal, Zone, Zone, Method) (kernel.Money, error) {
	return kernel.Zero(), nil
}

// ShippingTier prices one method: Base plus PerKg for every kilogram above
// FreeAllowanceKg.
type ShippingTier struct {
	Base            kernel.Money
	PerKg           kernel.Money
	FreeAllowanceKg decimal.Decimal
}

// WeightTierPolicy applies a ShippingTier per method and scales the result by
// the distance between zones: same zone 1.0, adjacent 1.5, otherwise 2.0.
type WeightTierPolicy struct {
	tiers map[Method]ShippingTier
}

func NewWeightTierPolicy(tiers map[Method]ShippingTier) (*WeightTierPolicy, error) {
	if len(tiers) == 0 {
		return nil, errs.NewValueIsRequiredError("shipping tiers")
	}

	copied := make(map[Method]ShippingTier, len(tiers))
	var errList []error
	for method, tier := range tiers {
		if tier.Base.IsNegative() || tier.PerKg.IsNegative() || tier.FreeAllowanceKg.IsNegative() {
			errList = append(errList, NewInvalidPriceError("shipping tier", string(method), "has a negative component"))
			continue
		}
		copied[method] = tier
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	return &WeightTierPolicy{tiers: copied}, nil
}

func (p *WeightTierPolicy) Fee(weightKg decimal.Decimal, from, to Zone, method Method) (kernel.Money, error) {
	tier, ok := p.tiers[method]
	if !ok {
		return kernel.Money{}, NewInvalidPriceError("shipping method", string(method), "is not offered")
	}
	if weightKg.IsNegative() {
		return kernel.Money{}, errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%s is negative", weightKg))
	}

	extra := weightKg.Sub(tier.FreeAllowanceKg)
	if extra.IsNegative() {
		extra = decimal.Zero
	}

	fee := tier.Base.Add(tier.PerKg.Mul(extra)).Mul(zoneFactor(from, to))
	if err := fee.CheckRange("shipping fee"); err != nil {
		return kernel.Money{}, err
	}
	return fee, nil
}

func zoneFactor(from, to Zone) decimal.Decimal {
	d := from - to
	if d < 0 {
		d = -d
	}
	switch d {
	case 0:
		return zoneFactorSame
	case 1:
		return zoneFactorAdjacent
	default:
		return zoneFactorFar
	}
}
