package queries

import (
	"context"
	"time"

	"procure-chef/internal/domain/catalog"
	"procure-chef/internal/domain/quote"
	"procure-chef/internal/domain/request"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Read models (DTO for read side)
type RequestItemView struct {
	ID        uuid.UUID       `json:"id"`
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	Unit      string          `json:"unit"`
}

type RequestView struct {
	ID        uuid.UUID         `json:"id"`
	Title     string            `json:"title"`
	Items     []RequestItemView `json:"items"`
	NeededBy  time.Time         `json:"needed_by"`
	Priority  string            `json:"priority"`
	CreatedBy uuid.UUID         `json:"created_by"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

type QuoteItemView struct {
	RequestItemID uuid.UUID       `json:"request_item_id"`
	RequestID     uuid.UUID       `json:"request_id"`
	ProductID     uuid.UUID       `json:"product_id"`
	Quantity      decimal.Decimal `json:"quantity"`
	Unit          string          `json:"unit"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	LineTotal     decimal.Decimal `json:"line_total"`
	InStock       bool            `json:"in_stock"`
	Note          string          `json:"note,omitempty"`
}

type QuoteView struct {
	ID           uuid.UUID       `json:"id"`
	SupplierID   uuid.UUID       `json:"supplier_id"`
	SupplierName string          `json:"supplier_name"`
	RequestIDs   []uuid.UUID     `json:"request_ids"`
	Items        []QuoteItemView `json:"items"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	ExpiresAt    time.Time       `json:"expires_at"`
}

type VolumeTierView struct {
	MinQuantity decimal.Decimal  `json:"min_quantity"`
	MaxQuantity *decimal.Decimal `json:"max_quantity,omitempty"`
	Price       decimal.Decimal  `json:"price"`
}

type OfferingView struct {
	SupplierID   uuid.UUID        `json:"supplier_id"`
	SupplierName string           `json:"supplier_name"`
	ProductID    uuid.UUID        `json:"product_id"`
	BasePrice    decimal.Decimal  `json:"base_price"`
	Tiers        []VolumeTierView `json:"volume_tiers,omitempty"`
	Available    bool             `json:"available"`
}

type RequestQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RequestView, error)
	List(ctx context.Context) ([]*RequestView, error)
}

type QuoteQueries interface {
	ListByRequest(ctx context.Context, requestID uuid.UUID) ([]*QuoteView, error)
}

type OfferingQueries interface {
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]*OfferingView, error)
}

// Read-side repository ports
type RequestReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*request.Request, error)
	FindAll(ctx context.Context) ([]*request.Request, error)
}

type QuoteReader interface {
	FindByRequestID(ctx context.Context, requestID uuid.UUID) ([]*quote.Quote, error)
}

type OfferingReader interface {
	// FindByProducts returns every supplier offering covering any of the
	// given products.
	FindByProducts(ctx context.Context, productIDs []uuid.UUID) ([]*catalog.Offering, error)
	FindByProduct(ctx context.Context, productID uuid.UUID) ([]*catalog.Offering, error)
}
