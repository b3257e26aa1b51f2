package response

import (
	"time"

	"procure-chef/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type RequestItemResponse struct {
	ID        uuid.UUID       `json:"id"`
	ProductID uuid.UUID       `json:"productId"`
	Quantity  decimal.Decimal `json:"quantity"`
	Unit      string          `json:"unit"`
}

type RequestResponse struct {
	ID        uuid.UUID             `json:"id"`
	Title     string                `json:"title"`
	Items     []RequestItemResponse `json:"items"`
	NeededBy  time.Time             `json:"neededBy"`
	Priority  string                `json:"priority"`
	CreatedBy uuid.UUID             `json:"createdBy"`
	CreatedAt time.Time             `json:"createdAt"`
	UpdatedAt time.Time             `json:"updatedAt"`
}

func FromRequestView(view *queries.RequestView) *RequestResponse {
	var resp RequestResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromRequestViews(views []*queries.RequestView) []*RequestResponse {
	out := make([]*RequestResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromRequestView(v))
	}
	return out
}
