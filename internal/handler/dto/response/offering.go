package response

import (
	"procure-chef/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type VolumeTierResponse struct {
	MinQuantity decimal.Decimal  `json:"minQuantity"`
	MaxQuantity *decimal.Decimal `json:"maxQuantity,omitempty"`
	Price       decimal.Decimal  `json:"price"`
}

type OfferingResponse struct {
	SupplierID   uuid.UUID            `json:"supplierId"`
	SupplierName string               `json:"supplierName"`
	ProductID    uuid.UUID            `json:"productId"`
	BasePrice    decimal.Decimal      `json:"basePrice"`
	Tiers        []VolumeTierResponse `json:"volumeTiers,omitempty"`
	Available    bool                 `json:"available"`
}

func FromOfferingView(view *queries.OfferingView) *OfferingResponse {
	var resp OfferingResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromOfferingViews(views []*queries.OfferingView) []*OfferingResponse {
	out := make([]*OfferingResponse, 0, len(views))
	for _, v := range views {
		out = append(out, FromOfferingView(v))
	}
	return out
}
