package quote

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidStatus = errors.New("invalid quote status")
	ErrQuoteRejected = errors.New("quote is already rejected")
)

type Status string

const (
	StatusSent     Status = "sent"
	StatusReceived Status = "received"
	StatusRejected Status = "rejected"
	StatusExpired  Status = "expired"
)

func NewStatus(value string) (Status, error) {
	switch Status(value) {
	case StatusSent, StatusReceived, StatusRejected, StatusExpired:
		return Status(value), nil
	default:
		return "", ErrInvalidStatus
	}
}

// Item is one quoted line, derived from a request item. It is recomputed
// on every generation and never edited directly. RequestID records which
// request the line came from, which is what keeps bundled quotes traceable.
type Item struct {
	requestItemID uuid.UUID
	requestID     uuid.UUID
	productID     uuid.UUID
	quantity      decimal.Decimal
	unit          string
	unitPrice     decimal.Decimal
	inStock       bool
	note          string
}

func (i Item) RequestItemID() uuid.UUID   { return i.requestItemID }
func (i Item) RequestID() uuid.UUID       { return i.requestID }
func (i Item) ProductID() uuid.UUID       { return i.productID }
func (i Item) Quantity() decimal.Decimal  { return i.quantity }
func (i Item) Unit() string               { return i.unit }
func (i Item) UnitPrice() decimal.Decimal { return i.unitPrice }
func (i Item) InStock() bool              { return i.inStock }
func (i Item) Note() string               { return i.note }

func (i Item) LineTotal() decimal.Decimal {
	return i.unitPrice.Mul(i.quantity)
}

// Quote prices one request (or, when bundled, several) against a single
// supplier. Immutable after creation except for its status; expiry is
// derived at read time and never persisted as a transition.
type Quote struct {
	id           uuid.UUID
	supplierID   uuid.UUID
	supplierName string
	requestIDs   []uuid.UUID
	items        []Item
	totalAmount  decimal.Decimal
	createdAt    time.Time
	expiresAt    time.Time
	status       Status
}

func ReconstructQuote(
	id uuid.UUID,
	supplierID uuid.UUID,
	supplierName string,
	requestIDs []uuid.UUID,
	items []Item,
	totalAmount decimal.Decimal,
	createdAt, expiresAt time.Time,
	status Status,
) *Quote {
	return &Quote{
		id:           id,
		supplierID:   supplierID,
		supplierName: supplierName,
		requestIDs:   requestIDs,
		items:        items,
		totalAmount:  totalAmount,
		createdAt:    createdAt,
		expiresAt:    expiresAt,
		status:       status,
	}
}

func ReconstructItem(
	requestItemID, requestID, productID uuid.UUID,
	quantity decimal.Decimal,
	unit string,
	unitPrice decimal.Decimal,
	inStock bool,
	note string,
) Item {
	return Item{
		requestItemID: requestItemID,
		requestID:     requestID,
		productID:     productID,
		quantity:      quantity,
		unit:          unit,
		unitPrice:     unitPrice,
		inStock:       inStock,
		note:          note,
	}
}

// EffectiveStatus derives expiry from the clock instead of persisting a
// transition: a stored quote past its expiry date reads as expired.
func (q *Quote) EffectiveStatus(now time.Time) Status {
	if q.status == StatusRejected {
		return q.status
	}
	if now.After(q.expiresAt) {
		return StatusExpired
	}
	return q.status
}

func (q *Quote) Reject() error {
	if q.status == StatusRejected {
		return ErrQuoteRejected
	}
	q.status = StatusRejected
	return nil
}

// IsBundle reports whether the quote aggregates more than one request.
func (q *Quote) IsBundle() bool {
	return len(q.requestIDs) > 1
}

// HasAvailableItems reports whether at least one line is in stock.
// Suppliers whose quotes fail this are excluded from availability filters.
func (q *Quote) HasAvailableItems() bool {
	for _, it := range q.items {
		if it.inStock {
			return true
		}
	}
	return false
}

// FilterAvailable keeps the quotes that have at least one in-stock item.
func FilterAvailable(quotes []*Quote) []*Quote {
	out := make([]*Quote, 0, len(quotes))
	for _, q := range quotes {
		if q.HasAvailableItems() {
			out = append(out, q)
		}
	}
	return out
}

func (q *Quote) ID() uuid.UUID                { return q.id }
func (q *Quote) SupplierID() uuid.UUID        { return q.supplierID }
func (q *Quote) SupplierName() string         { return q.supplierName }
func (q *Quote) RequestIDs() []uuid.UUID      { return q.requestIDs }
func (q *Quote) Items() []Item                { return q.items }
func (q *Quote) TotalAmount() decimal.Decimal { return q.totalAmount }
func (q *Quote) CreatedAt() time.Time         { return q.createdAt }
func (q *Quote) ExpiresAt() time.Time         { return q.expiresAt }
func (q *Quote) Status() Status               { return q.status }
