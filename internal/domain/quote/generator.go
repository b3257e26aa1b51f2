package quote

import (
	"log/slog"

	"procure-chef/internal/domain/catalog"
	"procure-chef/internal/domain/request"
	"procure-chef/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	noteNoOffering        = "supplier does not offer this product"
	noteOutOfStock        = "product is out of stock at this supplier"
	noteBasePriceFallback = "no volume tier matched; base price applied"
)

// Generator produces one quote per (request, supplier) pair. It is a pure
// transformation over its inputs; callers persist or display the result.
type Generator struct {
	clock  clock.Clock
	policy ValidityPolicy
	logger *slog.Logger
}

func NewGenerator(clk clock.Clock, policy ValidityPolicy, logger *slog.Logger) *Generator {
	return &Generator{
		clock:  clk,
		policy: policy,
		logger: logger,
	}
}

// Generate prices every item of req against one supplier's offerings,
// keyed by product id. Items the supplier does not carry, or carries but
// has out of stock, are included with a zero unit price rather than
// dropped so per-supplier totals remain traceable and comparable.
func (g *Generator) Generate(
	req *request.Request,
	supplierID uuid.UUID,
	supplierName string,
	offeringsByProduct map[uuid.UUID]*catalog.Offering,
) *Quote {
	now := g.clock.Now()

	items := make([]Item, 0, len(req.Items()))
	total := decimal.Zero
	for _, reqItem := range req.Items() {
		item := g.priceItem(req.ID(), reqItem, supplierID, offeringsByProduct[reqItem.ProductID()])
		total = total.Add(item.LineTotal())
		items = append(items, item)
	}

	return &Quote{
		id:           uuid.New(),
		supplierID:   supplierID,
		supplierName: supplierName,
		requestIDs:   []uuid.UUID{req.ID()},
		items:        items,
		totalAmount:  total,
		createdAt:    now,
		expiresAt:    g.policy.SingleExpiry(now),
		status:       StatusReceived,
	}
}

func (g *Generator) priceItem(
	requestID uuid.UUID,
	reqItem request.Item,
	supplierID uuid.UUID,
	offering *catalog.Offering,
) Item {
	item := Item{
		requestItemID: reqItem.ID(),
		requestID:     requestID,
		productID:     reqItem.ProductID(),
		quantity:      reqItem.Quantity(),
		unit:          reqItem.Unit(),
	}

	switch {
	case offering == nil:
		item.unitPrice = decimal.Zero
		item.note = noteNoOffering
	case !offering.Available():
		item.unitPrice = decimal.Zero
		item.note = noteOutOfStock
	default:
		price, tiered := offering.UnitPriceFor(reqItem.Quantity())
		if !tiered {
			// Non-fatal: quantity fell outside the tier set, or the set
			// is malformed. Absorbed here per the pricing error policy.
			item.note = noteBasePriceFallback
			g.logger.Warn("tier resolution fell back to base price",
				"supplier_id", supplierID,
				"product_id", reqItem.ProductID(),
				"quantity", reqItem.Quantity().String(),
			)
		}
		item.unitPrice = price
		item.inStock = true
	}

	return item
}
