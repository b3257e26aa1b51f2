package catalog

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNegativeBasePrice = errors.New("base price cannot be negative")
	ErrEmptySupplierName = errors.New("supplier name cannot be empty")
)

// Offering is a supplier's sellable terms for one product: a base price,
// optional volume tiers and an availability flag.
type Offering struct {
	supplierID   uuid.UUID
	supplierName string
	productID    uuid.UUID
	basePrice    decimal.Decimal
	tiers        []VolumeTier
	available    bool
	updatedAt    time.Time
}

// NewOffering validates the price but deliberately not the tier shape:
// a malformed persisted tier set degrades to the base price at resolve
// time instead of failing every read that touches the row.
func NewOffering(
	supplierID uuid.UUID,
	supplierName string,
	productID uuid.UUID,
	basePrice decimal.Decimal,
	tiers []VolumeTier,
	available bool,
) (*Offering, error) {
	if strings.TrimSpace(supplierName) == "" {
		return nil, ErrEmptySupplierName
	}
	if basePrice.IsNegative() {
		return nil, ErrNegativeBasePrice
	}
	return &Offering{
		supplierID:   supplierID,
		supplierName: strings.TrimSpace(supplierName),
		productID:    productID,
		basePrice:    basePrice,
		tiers:        tiers,
		available:    available,
	}, nil
}

func ReconstructOffering(
	supplierID uuid.UUID,
	supplierName string,
	productID uuid.UUID,
	basePrice decimal.Decimal,
	tiers []VolumeTier,
	available bool,
	updatedAt time.Time,
) *Offering {
	return &Offering{
		supplierID:   supplierID,
		supplierName: supplierName,
		productID:    productID,
		basePrice:    basePrice,
		tiers:        tiers,
		available:    available,
		updatedAt:    updatedAt,
	}
}

// UnitPriceFor resolves the tiered unit price for qty. The second return
// value is false when the base price was used as a fallback, either
// because the offering has no tier covering qty or the tier set is
// malformed. Fallback is non-fatal; callers log it and continue.
func (o *Offering) UnitPriceFor(qty decimal.Decimal) (decimal.Decimal, bool) {
	if len(o.tiers) == 0 {
		return o.basePrice, true
	}
	if price, ok := ResolveTier(o.tiers, qty); ok {
		return price, true
	}
	return o.basePrice, false
}

func (o *Offering) SupplierID() uuid.UUID   { return o.supplierID }
func (o *Offering) SupplierName() string    { return o.supplierName }
func (o *Offering) ProductID() uuid.UUID    { return o.productID }
func (o *Offering) BasePrice() decimal.Decimal { return o.basePrice }
func (o *Offering) Tiers() []VolumeTier     { return o.tiers }
func (o *Offering) Available() bool         { return o.available }
func (o *Offering) UpdatedAt() time.Time    { return o.updatedAt }
