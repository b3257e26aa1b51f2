package quote

import (
	"log/slog"
	"sort"

	"procure-chef/internal/domain/catalog"
	"procure-chef/internal/domain/request"
	"procure-chef/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Bundler combines the quotes of several requests into one quote per
// supplier, re-pricing every line at the supplier-wide aggregate quantity
// of its product. Per-request lines are kept individually (provenance via
// Item.RequestID); only their unit price is replaced.
type Bundler struct {
	generator *Generator
	clock     clock.Clock
	policy    ValidityPolicy
	logger    *slog.Logger
}

func NewBundler(generator *Generator, clk clock.Clock, policy ValidityPolicy, logger *slog.Logger) *Bundler {
	return &Bundler{
		generator: generator,
		clock:     clk,
		policy:    policy,
		logger:    logger,
	}
}

// Bundle produces one bundled quote per supplier in offeringsBySupplier.
// A supplier with no offering among the requested products yields no
// bundle at all; a product the supplier carries but cannot deliver stays
// in as a zero-priced out-of-stock line, same as single-request quoting.
func (b *Bundler) Bundle(
	requests []*request.Request,
	offeringsBySupplier map[uuid.UUID]map[uuid.UUID]*catalog.Offering,
) []*Quote {
	supplierIDs := make([]uuid.UUID, 0, len(offeringsBySupplier))
	for sid, offerings := range offeringsBySupplier {
		if len(offerings) == 0 {
			continue
		}
		supplierIDs = append(supplierIDs, sid)
	}
	sort.Slice(supplierIDs, func(i, j int) bool {
		return supplierIDs[i].String() < supplierIDs[j].String()
	})

	bundles := make([]*Quote, 0, len(supplierIDs))
	for _, sid := range supplierIDs {
		bundles = append(bundles, b.bundleSupplier(requests, sid, offeringsBySupplier[sid]))
	}
	return bundles
}

func (b *Bundler) bundleSupplier(
	requests []*request.Request,
	supplierID uuid.UUID,
	offerings map[uuid.UUID]*catalog.Offering,
) *Quote {
	supplierName := supplierNameOf(offerings)

	// Step 1: quote each request independently.
	perRequest := make([]*Quote, 0, len(requests))
	for _, req := range requests {
		perRequest = append(perRequest, b.generator.Generate(req, supplierID, supplierName, offerings))
	}

	// Step 2+3: aggregate quantity per product across all contributing
	// requests. Only in-stock lines participate; unavailable products are
	// not re-priced.
	totalQty := make(map[uuid.UUID]decimal.Decimal)
	for _, q := range perRequest {
		for _, it := range q.Items() {
			if !it.InStock() {
				continue
			}
			totalQty[it.ProductID()] = totalQty[it.ProductID()].Add(it.Quantity())
		}
	}

	// Step 4: re-resolve each product's unit price at the aggregate.
	aggPrice := make(map[uuid.UUID]decimal.Decimal, len(totalQty))
	aggFallback := make(map[uuid.UUID]bool, len(totalQty))
	for productID, qty := range totalQty {
		offering := offerings[productID]
		price, tiered := offering.UnitPriceFor(qty)
		aggPrice[productID] = price
		if !tiered {
			aggFallback[productID] = true
			b.logger.Warn("aggregate tier resolution fell back to base price",
				"supplier_id", supplierID,
				"product_id", productID,
				"aggregate_quantity", qty.String(),
			)
		}
	}

	// Step 5: union of all per-request lines, re-priced, total recomputed.
	now := b.clock.Now()
	requestIDs := make([]uuid.UUID, 0, len(requests))
	for _, req := range requests {
		requestIDs = append(requestIDs, req.ID())
	}

	var items []Item
	total := decimal.Zero
	for _, q := range perRequest {
		for _, it := range q.Items() {
			if it.InStock() {
				it.unitPrice = aggPrice[it.ProductID()]
				// The per-request note no longer applies at the aggregate.
				if aggFallback[it.ProductID()] {
					it.note = noteBasePriceFallback
				} else {
					it.note = ""
				}
			}
			total = total.Add(it.LineTotal())
			items = append(items, it)
		}
	}

	return &Quote{
		id:           uuid.New(),
		supplierID:   supplierID,
		supplierName: supplierName,
		requestIDs:   requestIDs,
		items:        items,
		totalAmount:  total,
		createdAt:    now,
		expiresAt:    b.policy.BundledExpiry(now),
		status:       StatusReceived,
	}
}

func supplierNameOf(offerings map[uuid.UUID]*catalog.Offering) string {
	for _, o := range offerings {
		return o.SupplierName()
	}
	return ""
}
