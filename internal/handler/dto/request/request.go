package request

import (
	"strings"
	"time"

	"procure-chef/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RequestItemPayload struct {
	ProductID uuid.UUID       `json:"product_id" binding:"required"`
	Quantity  decimal.Decimal `json:"quantity" binding:"required"`
	Unit      string          `json:"unit" binding:"required"`
}

type CreateRequestRequest struct {
	Title       string               `json:"title" binding:"required"`
	Items       []RequestItemPayload `json:"items" binding:"required,min=1,dive"`
	NeededBy    time.Time            `json:"needed_by" binding:"required"`
	Priority    string               `json:"priority" binding:"required"`
	RequestedBy uuid.UUID            `json:"requested_by" binding:"required"`
}

func (r CreateRequestRequest) ToInput() commands.RequestInput {
	items := make([]commands.RequestItemInput, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, commands.RequestItemInput{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Unit:      strings.TrimSpace(it.Unit),
		})
	}
	return commands.RequestInput{
		Title:     strings.TrimSpace(r.Title),
		Items:     items,
		NeededBy:  r.NeededBy,
		Priority:  r.Priority,
		CreatedBy: r.RequestedBy,
	}
}

type UpdateRequestRequest struct {
	Title    string               `json:"title" binding:"required"`
	Items    []RequestItemPayload `json:"items" binding:"required,min=1,dive"`
	NeededBy time.Time            `json:"needed_by" binding:"required"`
	Priority string               `json:"priority" binding:"required"`
}

func (r UpdateRequestRequest) ToInput() commands.RequestInput {
	create := CreateRequestRequest{
		Title:    r.Title,
		Items:    r.Items,
		NeededBy: r.NeededBy,
		Priority: r.Priority,
	}
	return create.ToInput()
}
