package response

import (
	"time"

	"procure-chef/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type QuoteItemResponse struct {
	RequestItemID uuid.UUID       `json:"requestItemId"`
	RequestID     uuid.UUID       `json:"requestId"`
	ProductID     uuid.UUID       `json:"productId"`
	Quantity      decimal.Decimal `json:"quantity"`
	Unit          string          `json:"unit"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	LineTotal     decimal.Decimal `json:"lineTotal"`
	InStock       bool            `json:"inStock"`
	Note          string          `json:"note,omitempty"`
}

type QuoteResponse struct {
	ID           uuid.UUID           `json:"id"`
	SupplierID   uuid.UUID           `json:"supplierId"`
	SupplierName string              `json:"supplierName"`
	RequestIDs   []uuid.UUID         `json:"requestIds"`
	Items        []QuoteItemResponse `json:"items"`
	TotalAmount  decimal.Decimal     `json:"totalAmount"`
	Status       string              `json:"status"`
	CreatedAt    time.Time           `json:"createdAt"`
	ExpiresAt    time.Time           `json:"expiresAt"`
}

func FromQuoteView(view *queries.QuoteView) *QuoteResponse {
	var resp QuoteResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromQuoteViews(views []*queries.QuoteView) []*QuoteResponse {
	out := make([]*QuoteResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromQuoteView(v))
	}
	return out
}
