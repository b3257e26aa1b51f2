package catalog

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrNegativeTierQuantity = errors.New("tier quantity cannot be negative")
	ErrNegativeTierPrice    = errors.New("tier price cannot be negative")
	ErrInvertedTierBounds   = errors.New("tier max quantity is below min quantity")
)

// VolumeTier maps a quantity range to a fixed unit price. Bounds are
// inclusive on both ends; a nil max means the tier is open-ended.
type VolumeTier struct {
	minQuantity decimal.Decimal
	maxQuantity *decimal.Decimal
	price       decimal.Decimal
}

func NewVolumeTier(minQuantity decimal.Decimal, maxQuantity *decimal.Decimal, price decimal.Decimal) (VolumeTier, error) {
	if minQuantity.IsNegative() {
		return VolumeTier{}, ErrNegativeTierQuantity
	}
	if price.IsNegative() {
		return VolumeTier{}, ErrNegativeTierPrice
	}
	if maxQuantity != nil {
		if maxQuantity.IsNegative() {
			return VolumeTier{}, ErrNegativeTierQuantity
		}
		if maxQuantity.LessThan(minQuantity) {
			return VolumeTier{}, ErrInvertedTierBounds
		}
	}
	return VolumeTier{
		minQuantity: minQuantity,
		maxQuantity: maxQuantity,
		price:       price,
	}, nil
}

func (t VolumeTier) MinQuantity() decimal.Decimal  { return t.minQuantity }
func (t VolumeTier) MaxQuantity() *decimal.Decimal { return t.maxQuantity }
func (t VolumeTier) Price() decimal.Decimal        { return t.price }

// Contains reports whether qty falls inside the tier's inclusive bounds.
func (t VolumeTier) Contains(qty decimal.Decimal) bool {
	if qty.LessThan(t.minQuantity) {
		return false
	}
	if t.maxQuantity != nil && qty.GreaterThan(*t.maxQuantity) {
		return false
	}
	return true
}

// ResolveTier selects the unit price for qty from a quantity-ordered,
// disjoint tier set. Tiers are scanned in ascending order so that at a
// shared boundary the lower tier wins. The second return value is false
// when no tier matches or the set is malformed; callers fall back to the
// offering's base price in that case.
func ResolveTier(tiers []VolumeTier, qty decimal.Decimal) (decimal.Decimal, bool) {
	if qty.IsNegative() || !wellFormed(tiers) {
		return decimal.Zero, false
	}
	for _, t := range tiers {
		if t.Contains(qty) {
			return t.price, true
		}
	}
	return decimal.Zero, false
}

// wellFormed checks that tiers ascend by min quantity and do not overlap
// beyond a shared boundary point. Touching tiers (one's max equal to the
// next's min) are fine; the ascending scan resolves the shared quantity to
// the lower tier. Persisted tier sets should already satisfy this; the
// check keeps a malformed row from silently matching more than one tier.
func wellFormed(tiers []VolumeTier) bool {
	for i := 1; i < len(tiers); i++ {
		prev, cur := tiers[i-1], tiers[i]
		if cur.minQuantity.LessThan(prev.minQuantity) {
			return false
		}
		if prev.maxQuantity == nil || cur.minQuantity.LessThan(*prev.maxQuantity) {
			return false
		}
	}
	return true
}
