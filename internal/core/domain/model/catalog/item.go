// Package catalog models the read-only menu snapshot the pricing engine
// consumes. Items are owned by the external menu collaborator; the core never
// writes them back.
package catalog

import (
	"strings"

	"dispatch/internal/core/domain/model/kernel"
)

// Item is a catalog entry as received from the menu collaborator. Prices
// arrive as decimal text; nil or blank optional prices count as absent.
type Item struct {
	ID             kernel.UUID
	Name           string
	Price          string
	DiscountPrice  *string
	EffectivePrice *string
	IsAvailable    bool
	// WeightKg is the shipping weight of one unit. Zero means the item does
	// not ship as a parcel.
	WeightKg float64
}

// HasEffectivePrice reports a non-blank effective price.
func (i Item) HasEffectivePrice() bool {
	return present(i.EffectivePrice)
}

// HasDiscountPrice reports a non-blank discount price.
func (i Item) HasDiscountPrice() bool {
	return present(i.DiscountPrice)
}

func present(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}
