//go:build unit || e2e

package builder

import (
	"time"

	domquote "procure-chef/internal/domain/quote"
	"procure-chef/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type QuoteItemSpec struct {
	RequestItemID uuid.UUID
	RequestID     uuid.UUID
	ProductID     uuid.UUID
	Quantity      decimal.Decimal
	Unit          string
	UnitPrice     decimal.Decimal
	InStock       bool
	Note          string
}

type QuoteBuilder struct {
	ID           uuid.UUID
	SupplierID   uuid.UUID
	SupplierName string
	RequestIDs   []uuid.UUID
	Items        []QuoteItemSpec
	CreatedAt    time.Time
	ExpiresAt    time.Time
	Status       string
}

func NewQuoteBuilder() *QuoteBuilder {
	now := time.Now()
	requestID := uuid.New()
	return &QuoteBuilder{
		ID:           uuid.New(),
		SupplierID:   uuid.New(),
		SupplierName: "Valley Fresh Produce",
		RequestIDs:   []uuid.UUID{requestID},
		Items: []QuoteItemSpec{
			{
				RequestItemID: uuid.New(),
				RequestID:     requestID,
				ProductID:     uuid.New(),
				Quantity:      decimal.NewFromInt(8),
				Unit:          "kg",
				UnitPrice:     decimal.RequireFromString("10.00"),
				InStock:       true,
			},
		},
		CreatedAt: now,
		ExpiresAt: now.Add(72 * time.Hour),
		Status:    string(domquote.StatusReceived),
	}
}

func (b *QuoteBuilder) With(mutate func(*QuoteBuilder)) *QuoteBuilder {
	mutate(b)
	return b
}

func (b *QuoteBuilder) BuildDomain() *domquote.Quote {
	items := make([]domquote.Item, 0, len(b.Items))
	total := decimal.Zero
	for _, spec := range b.Items {
		item := domquote.ReconstructItem(
			spec.RequestItemID, spec.RequestID, spec.ProductID,
			spec.Quantity, spec.Unit, spec.UnitPrice, spec.InStock, spec.Note,
		)
		total = total.Add(item.LineTotal())
		items = append(items, item)
	}
	return domquote.ReconstructQuote(
		b.ID, b.SupplierID, b.SupplierName, b.RequestIDs,
		items, total, b.CreatedAt, b.ExpiresAt, domquote.Status(b.Status),
	)
}

func (b *QuoteBuilder) BuildView() *queries.QuoteView {
	return queries.NewQuoteView(b.BuildDomain(), b.CreatedAt)
}
