//go:build unit

package quote_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"procure-chef/internal/domain/catalog"
	"procure-chef/internal/domain/quote"
	"procure-chef/internal/pkg/clock"
	"procure-chef/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func newTestGenerator(t *testing.T) *quote.Generator {
	t.Helper()
	policy, err := quote.NewValidityPolicy(72*time.Hour, 168*time.Hour)
	require.NoError(t, err)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return quote.NewGenerator(clock.NewMockClock(testTime), policy, logger)
}

func qty(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func offeringsByProduct(offerings ...*catalog.Offering) map[uuid.UUID]*catalog.Offering {
	m := make(map[uuid.UUID]*catalog.Offering, len(offerings))
	for _, o := range offerings {
		m[o.ProductID()] = o
	}
	return m
}

func TestGeneratorGenerate(t *testing.T) {
	t.Run("prices every item against the supplier's tiers", func(t *testing.T) {
		gen := newTestGenerator(t)
		offering := builder.NewOfferingBuilder().WithStandardTiers().BuildReconstructed()

		req := builder.NewRequestBuilder().
			WithOnlyItem(offering.ProductID(), qty("25"), "kg").
			BuildReconstructed()

		q := gen.Generate(req, offering.SupplierID(), offering.SupplierName(), offeringsByProduct(offering))

		require.Len(t, q.Items(), 1)
		item := q.Items()[0]
		assert.True(t, item.UnitPrice().Equal(qty("9.50")))
		assert.True(t, item.InStock())
		assert.Empty(t, item.Note())
		assert.True(t, q.TotalAmount().Equal(qty("237.50")))
		assert.Equal(t, []uuid.UUID{req.ID()}, q.RequestIDs())
		assert.Equal(t, quote.StatusReceived, q.Status())
		assert.Equal(t, testTime, q.CreatedAt())
		assert.Equal(t, testTime.Add(72*time.Hour), q.ExpiresAt())
	})

	t.Run("item the supplier does not carry stays in with zero price", func(t *testing.T) {
		gen := newTestGenerator(t)
		offering := builder.NewOfferingBuilder().WithStandardTiers().BuildReconstructed()
		unknownProduct := uuid.New()

		req := builder.NewRequestBuilder().
			WithOnlyItem(offering.ProductID(), qty("5"), "kg").
			WithItem(unknownProduct, qty("3"), "case").
			BuildReconstructed()

		q := gen.Generate(req, offering.SupplierID(), offering.SupplierName(), offeringsByProduct(offering))

		require.Len(t, q.Items(), 2)

		missing := q.Items()[1]
		assert.Equal(t, unknownProduct, missing.ProductID())
		assert.True(t, missing.UnitPrice().IsZero())
		assert.False(t, missing.InStock())
		assert.NotEmpty(t, missing.Note())

		// Total only reflects the priced line: 5 * 10.00.
		assert.True(t, q.TotalAmount().Equal(qty("50.00")))
	})

	t.Run("unavailable offering yields an out-of-stock zero-priced line", func(t *testing.T) {
		gen := newTestGenerator(t)
		offering := builder.NewOfferingBuilder().
			WithStandardTiers().
			With(func(b *builder.OfferingBuilder) { b.Available = false }).
			BuildReconstructed()

		req := builder.NewRequestBuilder().
			WithOnlyItem(offering.ProductID(), qty("5"), "kg").
			BuildReconstructed()

		q := gen.Generate(req, offering.SupplierID(), offering.SupplierName(), offeringsByProduct(offering))

		require.Len(t, q.Items(), 1)
		item := q.Items()[0]
		assert.True(t, item.UnitPrice().IsZero())
		assert.False(t, item.InStock())
		assert.NotEmpty(t, item.Note())
		assert.True(t, q.TotalAmount().IsZero())
		assert.False(t, q.HasAvailableItems())
	})

	t.Run("quantity outside the tier set falls back to base price", func(t *testing.T) {
		gen := newTestGenerator(t)
		offering := builder.NewOfferingBuilder().WithStandardTiers().BuildReconstructed()

		req := builder.NewRequestBuilder().
			WithOnlyItem(offering.ProductID(), qty("0.5"), "kg").
			BuildReconstructed()

		q := gen.Generate(req, offering.SupplierID(), offering.SupplierName(), offeringsByProduct(offering))

		require.Len(t, q.Items(), 1)
		item := q.Items()[0]
		assert.True(t, item.UnitPrice().Equal(qty("10")))
		assert.True(t, item.InStock())
		assert.NotEmpty(t, item.Note())
	})

	t.Run("total equals the sum of line totals", func(t *testing.T) {
		gen := newTestGenerator(t)
		offeringA := builder.NewOfferingBuilder().WithStandardTiers().BuildReconstructed()
		offeringB := builder.NewOfferingBuilder().
			With(func(b *builder.OfferingBuilder) {
				b.SupplierID = offeringA.SupplierID()
				b.SupplierName = offeringA.SupplierName()
				b.BasePrice = qty("4.25")
			}).
			BuildReconstructed()

		req := builder.NewRequestBuilder().
			WithOnlyItem(offeringA.ProductID(), qty("12"), "kg").
			WithItem(offeringB.ProductID(), qty("4"), "case").
			BuildReconstructed()

		q := gen.Generate(req, offeringA.SupplierID(), offeringA.SupplierName(), offeringsByProduct(offeringA, offeringB))

		sum := decimal.Zero
		for _, it := range q.Items() {
			sum = sum.Add(it.LineTotal())
		}
		assert.True(t, q.TotalAmount().Equal(sum))
		// 12 * 9.50 + 4 * 4.25
		assert.True(t, q.TotalAmount().Equal(qty("131.00")))
	})
}

func TestQuoteEffectiveStatus(t *testing.T) {
	q := builder.NewQuoteBuilder().
		With(func(b *builder.QuoteBuilder) {
			b.CreatedAt = testTime
			b.ExpiresAt = testTime.Add(72 * time.Hour)
		}).
		BuildDomain()

	t.Run("before expiry keeps the stored status", func(t *testing.T) {
		assert.Equal(t, quote.StatusReceived, q.EffectiveStatus(testTime.Add(time.Hour)))
	})

	t.Run("exactly at expiry is still valid", func(t *testing.T) {
		assert.Equal(t, quote.StatusReceived, q.EffectiveStatus(testTime.Add(72*time.Hour)))
	})

	t.Run("past expiry reads as expired", func(t *testing.T) {
		assert.Equal(t, quote.StatusExpired, q.EffectiveStatus(testTime.Add(72*time.Hour+time.Second)))
	})

	t.Run("rejection is terminal", func(t *testing.T) {
		rejected := builder.NewQuoteBuilder().
			With(func(b *builder.QuoteBuilder) {
				b.CreatedAt = testTime
				b.ExpiresAt = testTime.Add(time.Hour)
				b.Status = string(quote.StatusRejected)
			}).
			BuildDomain()

		assert.Equal(t, quote.StatusRejected, rejected.EffectiveStatus(testTime.Add(48*time.Hour)))
		assert.ErrorIs(t, rejected.Reject(), quote.ErrQuoteRejected)
	})
}

func TestFilterAvailable(t *testing.T) {
	inStock := builder.NewQuoteBuilder().BuildDomain()
	outOfStock := builder.NewQuoteBuilder().
		With(func(b *builder.QuoteBuilder) {
			b.Items[0].InStock = false
			b.Items[0].UnitPrice = decimal.Zero
		}).
		BuildDomain()

	filtered := quote.FilterAvailable([]*quote.Quote{inStock, outOfStock})
	require.Len(t, filtered, 1)
	assert.Equal(t, inStock.ID(), filtered[0].ID())
}
