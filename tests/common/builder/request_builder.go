//go:build unit || e2e

package builder

import (
	"time"

	domrequest "procure-chef/internal/domain/request"
	reqdto "procure-chef/internal/handler/dto/request"
	"procure-chef/internal/usecase/commands"
	"procure-chef/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RequestItemSpec struct {
	ID        uuid.UUID
	ProductID uuid.UUID
	Quantity  decimal.Decimal
	Unit      string
}

type RequestBuilder struct {
	ID        uuid.UUID
	Title     string
	Items     []RequestItemSpec
	NeededBy  time.Time
	Priority  string
	CreatedBy uuid.UUID
	Now       time.Time
}

func NewRequestBuilder() *RequestBuilder {
	now := time.Now()
	return &RequestBuilder{
		ID:    uuid.New(),
		Title: "Weekly produce order",
		Items: []RequestItemSpec{
			{
				ID:        uuid.New(),
				ProductID: uuid.New(),
				Quantity:  decimal.NewFromInt(8),
				Unit:      "kg",
			},
		},
		NeededBy:  now.Add(72 * time.Hour),
		Priority:  string(domrequest.PriorityNormal),
		CreatedBy: uuid.New(),
		Now:       now,
	}
}

func (b *RequestBuilder) With(mutate func(*RequestBuilder)) *RequestBuilder {
	mutate(b)
	return b
}

func (b *RequestBuilder) WithItem(productID uuid.UUID, quantity decimal.Decimal, unit string) *RequestBuilder {
	b.Items = append(b.Items, RequestItemSpec{
		ID:        uuid.New(),
		ProductID: productID,
		Quantity:  quantity,
		Unit:      unit,
	})
	return b
}

func (b *RequestBuilder) WithOnlyItem(productID uuid.UUID, quantity decimal.Decimal, unit string) *RequestBuilder {
	b.Items = nil
	return b.WithItem(productID, quantity, unit)
}

func (b *RequestBuilder) buildItems() ([]domrequest.Item, error) {
	items := make([]domrequest.Item, 0, len(b.Items))
	for _, spec := range b.Items {
		item, err := domrequest.NewItem(spec.ID, spec.ProductID, spec.Quantity, spec.Unit)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (b *RequestBuilder) BuildDomain() (*domrequest.Request, error) {
	items, err := b.buildItems()
	if err != nil {
		return nil, err
	}
	priority, err := domrequest.NewPriority(b.Priority)
	if err != nil {
		return nil, err
	}
	return domrequest.NewRequest(b.Title, items, b.NeededBy, priority, b.CreatedBy, b.Now)
}

// BuildReconstructed bypasses validation and keeps the builder's ID, for
// tests that need a deterministic request identity.
func (b *RequestBuilder) BuildReconstructed() *domrequest.Request {
	items, err := b.buildItems()
	if err != nil {
		panic(err)
	}
	return domrequest.ReconstructRequest(
		b.ID, b.Title, items, b.NeededBy,
		domrequest.Priority(b.Priority), b.CreatedBy, b.Now, b.Now,
	)
}

func (b *RequestBuilder) BuildInput() commands.RequestInput {
	items := make([]commands.RequestItemInput, 0, len(b.Items))
	for _, spec := range b.Items {
		items = append(items, commands.RequestItemInput{
			ProductID: spec.ProductID,
			Quantity:  spec.Quantity,
			Unit:      spec.Unit,
		})
	}
	return commands.RequestInput{
		Title:     b.Title,
		Items:     items,
		NeededBy:  b.NeededBy,
		Priority:  b.Priority,
		CreatedBy: b.CreatedBy,
	}
}

func (b *RequestBuilder) BuildCreateRequestDTO() reqdto.CreateRequestRequest {
	items := make([]reqdto.RequestItemPayload, 0, len(b.Items))
	for _, spec := range b.Items {
		items = append(items, reqdto.RequestItemPayload{
			ProductID: spec.ProductID,
			Quantity:  spec.Quantity,
			Unit:      spec.Unit,
		})
	}
	return reqdto.CreateRequestRequest{
		Title:       b.Title,
		Items:       items,
		NeededBy:    b.NeededBy,
		Priority:    b.Priority,
		RequestedBy: b.CreatedBy,
	}
}

func (b *RequestBuilder) BuildView() *queries.RequestView {
	items := make([]queries.RequestItemView, 0, len(b.Items))
	for _, spec := range b.Items {
		items = append(items, queries.RequestItemView{
			ID:        spec.ID,
			ProductID: spec.ProductID,
			Quantity:  spec.Quantity,
			Unit:      spec.Unit,
		})
	}
	return &queries.RequestView{
		ID:        b.ID,
		Title:     b.Title,
		Items:     items,
		NeededBy:  b.NeededBy,
		Priority:  b.Priority,
		CreatedBy: b.CreatedBy,
		CreatedAt: b.Now,
		UpdatedAt: b.Now,
	}
}
