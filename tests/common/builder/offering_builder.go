//go:build unit || e2e

package builder

import (
	"time"

	"procure-chef/internal/domain/catalog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TierSpec struct {
	MinQuantity decimal.Decimal
	MaxQuantity *decimal.Decimal
	Price       decimal.Decimal
}

type OfferingBuilder struct {
	SupplierID   uuid.UUID
	SupplierName string
	ProductID    uuid.UUID
	BasePrice    decimal.Decimal
	Tiers        []TierSpec
	Available    bool
	UpdatedAt    time.Time
}

func NewOfferingBuilder() *OfferingBuilder {
	return &OfferingBuilder{
		SupplierID:   uuid.New(),
		SupplierName: "Valley Fresh Produce",
		ProductID:    uuid.New(),
		BasePrice:    decimal.NewFromInt(10),
		Available:    true,
		UpdatedAt:    time.Now(),
	}
}

func (b *OfferingBuilder) With(mutate func(*OfferingBuilder)) *OfferingBuilder {
	mutate(b)
	return b
}

func (b *OfferingBuilder) WithTier(min int64, max *int64, price string) *OfferingBuilder {
	var maxQty *decimal.Decimal
	if max != nil {
		d := decimal.NewFromInt(*max)
		maxQty = &d
	}
	b.Tiers = append(b.Tiers, TierSpec{
		MinQuantity: decimal.NewFromInt(min),
		MaxQuantity: maxQty,
		Price:       decimal.RequireFromString(price),
	})
	return b
}

// WithStandardTiers installs the three-tier ladder used across the pricing
// tests: 1-10 at 10.00, 11-50 at 9.50, 51+ at 9.00.
func (b *OfferingBuilder) WithStandardTiers() *OfferingBuilder {
	ten := int64(10)
	fifty := int64(50)
	return b.
		WithTier(1, &ten, "10.00").
		WithTier(11, &fifty, "9.50").
		WithTier(51, nil, "9.00")
}

func (b *OfferingBuilder) BuildDomain() (*catalog.Offering, error) {
	tiers, err := b.buildTiers()
	if err != nil {
		return nil, err
	}
	return catalog.NewOffering(b.SupplierID, b.SupplierName, b.ProductID, b.BasePrice, tiers, b.Available)
}

func (b *OfferingBuilder) BuildReconstructed() *catalog.Offering {
	tiers, err := b.buildTiers()
	if err != nil {
		panic(err)
	}
	return catalog.ReconstructOffering(
		b.SupplierID, b.SupplierName, b.ProductID,
		b.BasePrice, tiers, b.Available, b.UpdatedAt,
	)
}

func (b *OfferingBuilder) buildTiers() ([]catalog.VolumeTier, error) {
	tiers := make([]catalog.VolumeTier, 0, len(b.Tiers))
	for _, spec := range b.Tiers {
		tier, err := catalog.NewVolumeTier(spec.MinQuantity, spec.MaxQuantity, spec.Price)
		if err != nil {
			return nil, err
		}
		tiers = append(tiers, tier)
	}
	return tiers, nil
}
