package request

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNoItems            = errors.New("request must contain at least one item")
	ErrNonPositiveQty     = errors.New("item quantity must be positive")
	ErrEmptyUnit          = errors.New("item unit cannot be empty")
	ErrInvalidPriority    = errors.New("invalid priority")
	ErrNeededByInPast     = errors.New("needed-by date cannot be in the past")
	ErrDuplicateRequestItem = errors.New("duplicate item id in request")
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func NewPriority(value string) (Priority, error) {
	switch Priority(value) {
	case PriorityLow, PriorityNormal, PriorityHigh, PriorityUrgent:
		return Priority(value), nil
	default:
		return "", ErrInvalidPriority
	}
}

// Item is one requested product line. Items are immutable once a quote
// references the request; pricing never mutates them.
type Item struct {
	id        uuid.UUID
	productID uuid.UUID
	quantity  decimal.Decimal
	unit      string
}

func NewItem(id, productID uuid.UUID, quantity decimal.Decimal, unit string) (Item, error) {
	if !quantity.IsPositive() {
		return Item{}, ErrNonPositiveQty
	}
	if strings.TrimSpace(unit) == "" {
		return Item{}, ErrEmptyUnit
	}
	return Item{
		id:        id,
		productID: productID,
		quantity:  quantity,
		unit:      strings.TrimSpace(unit),
	}, nil
}

func (i Item) ID() uuid.UUID             { return i.id }
func (i Item) ProductID() uuid.UUID      { return i.productID }
func (i Item) Quantity() decimal.Decimal { return i.quantity }
func (i Item) Unit() string              { return i.unit }

// Request is a chef's procurement request: an ordered sequence of items
// plus scheduling metadata. Read by the quote generator and bundler,
// never mutated by pricing logic.
type Request struct {
	id        uuid.UUID
	title     string
	items     []Item
	neededBy  time.Time
	priority  Priority
	createdBy uuid.UUID
	createdAt time.Time
	updatedAt time.Time
}

func NewRequest(
	title string,
	items []Item,
	neededBy time.Time,
	priority Priority,
	createdBy uuid.UUID,
	now time.Time,
) (*Request, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	if neededBy.Before(now) {
		return nil, ErrNeededByInPast
	}
	if _, err := NewPriority(string(priority)); err != nil {
		return nil, err
	}
	seen := make(map[uuid.UUID]struct{}, len(items))
	for _, it := range items {
		if _, dup := seen[it.id]; dup {
			return nil, ErrDuplicateRequestItem
		}
		seen[it.id] = struct{}{}
	}

	return &Request{
		id:        uuid.New(),
		title:     strings.TrimSpace(title),
		items:     items,
		neededBy:  neededBy,
		priority:  priority,
		createdBy: createdBy,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructRequest(
	id uuid.UUID,
	title string,
	items []Item,
	neededBy time.Time,
	priority Priority,
	createdBy uuid.UUID,
	createdAt, updatedAt time.Time,
) *Request {
	return &Request{
		id:        id,
		title:     title,
		items:     items,
		neededBy:  neededBy,
		priority:  priority,
		createdBy: createdBy,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// ProductIDs returns the distinct product ids across the request's items,
// preserving first-seen order.
func (r *Request) ProductIDs() []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(r.items))
	ids := make([]uuid.UUID, 0, len(r.items))
	for _, it := range r.items {
		if _, ok := seen[it.productID]; ok {
			continue
		}
		seen[it.productID] = struct{}{}
		ids = append(ids, it.productID)
	}
	return ids
}

func (r *Request) ID() uuid.UUID        { return r.id }
func (r *Request) Title() string        { return r.title }
func (r *Request) Items() []Item        { return r.items }
func (r *Request) NeededBy() time.Time  { return r.neededBy }
func (r *Request) Priority() Priority   { return r.priority }
func (r *Request) CreatedBy() uuid.UUID { return r.createdBy }
func (r *Request) CreatedAt() time.Time { return r.createdAt }
func (r *Request) UpdatedAt() time.Time { return r.updatedAt }
