package queries

import (
	"time"

	"procure-chef/internal/domain/catalog"
	"procure-chef/internal/domain/quote"
	"procure-chef/internal/domain/request"
)

func NewRequestView(req *request.Request) *RequestView {
	items := make([]RequestItemView, 0, len(req.Items()))
	for _, it := range req.Items() {
		items = append(items, RequestItemView{
			ID:        it.ID(),
			ProductID: it.ProductID(),
			Quantity:  it.Quantity(),
			Unit:      it.Unit(),
		})
	}
	return &RequestView{
		ID:        req.ID(),
		Title:     req.Title(),
		Items:     items,
		NeededBy:  req.NeededBy(),
		Priority:  string(req.Priority()),
		CreatedBy: req.CreatedBy(),
		CreatedAt: req.CreatedAt(),
		UpdatedAt: req.UpdatedAt(),
	}
}

// NewQuoteView renders a quote as of now; the status field carries the
// derived effective status, so stored quotes past expiry read as expired.
func NewQuoteView(q *quote.Quote, now time.Time) *QuoteView {
	items := make([]QuoteItemView, 0, len(q.Items()))
	for _, it := range q.Items() {
		items = append(items, QuoteItemView{
			RequestItemID: it.RequestItemID(),
			RequestID:     it.RequestID(),
			ProductID:     it.ProductID(),
			Quantity:      it.Quantity(),
			Unit:          it.Unit(),
			UnitPrice:     it.UnitPrice(),
			LineTotal:     it.LineTotal(),
			InStock:       it.InStock(),
			Note:          it.Note(),
		})
	}
	return &QuoteView{
		ID:           q.ID(),
		SupplierID:   q.SupplierID(),
		SupplierName: q.SupplierName(),
		RequestIDs:   q.RequestIDs(),
		Items:        items,
		TotalAmount:  q.TotalAmount(),
		Status:       string(q.EffectiveStatus(now)),
		CreatedAt:    q.CreatedAt(),
		ExpiresAt:    q.ExpiresAt(),
	}
}

func NewOfferingView(o *catalog.Offering) *OfferingView {
	tiers := make([]VolumeTierView, 0, len(o.Tiers()))
	for _, t := range o.Tiers() {
		tiers = append(tiers, VolumeTierView{
			MinQuantity: t.MinQuantity(),
			MaxQuantity: t.MaxQuantity(),
			Price:       t.Price(),
		})
	}
	return &OfferingView{
		SupplierID:   o.SupplierID(),
		SupplierName: o.SupplierName(),
		ProductID:    o.ProductID(),
		BasePrice:    o.BasePrice(),
		Tiers:        tiers,
		Available:    o.Available(),
	}
}
