package commands

import (
	"context"
	"log/slog"
	"sort"

	"procure-chef/internal/domain/catalog"
	"procure-chef/internal/domain/quote"
	"procure-chef/internal/domain/request"
	"procure-chef/internal/infra"
	"procure-chef/internal/pkg/clock"
	"procure-chef/internal/pkg/errs"
	"procure-chef/internal/usecase/queries"

	"github.com/google/uuid"
)

type QuoteCommands interface {
	// GenerateForRequest produces one quote per supplier carrying any of
	// the request's products, persists them and returns the views.
	GenerateForRequest(ctx context.Context, requestID uuid.UUID) ([]*queries.QuoteView, error)
	// GenerateBundled combines several requests into one quote per
	// supplier, re-priced at aggregate quantities.
	GenerateBundled(ctx context.Context, requestIDs []uuid.UUID) ([]*queries.QuoteView, error)
}

type quoteCommandsImpl struct {
	requestRepo  RequestRepository
	offeringRepo queries.OfferingReader
	quoteRepo    QuoteRepository
	generator    *quote.Generator
	bundler      *quote.Bundler
	clock        clock.Clock
	logger       *slog.Logger
}

func NewQuoteCommands(
	requestRepo RequestRepository,
	offeringRepo queries.OfferingReader,
	quoteRepo QuoteRepository,
	generator *quote.Generator,
	bundler *quote.Bundler,
	clk clock.Clock,
	logger *slog.Logger,
) QuoteCommands {
	return &quoteCommandsImpl{
		requestRepo:  requestRepo,
		offeringRepo: offeringRepo,
		quoteRepo:    quoteRepo,
		generator:    generator,
		bundler:      bundler,
		clock:        clk,
		logger:       logger,
	}
}

func (c *quoteCommandsImpl) GenerateForRequest(ctx context.Context, requestID uuid.UUID) ([]*queries.QuoteView, error) {
	req, err := c.findRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}

	bySupplier, err := c.loadOfferings(ctx, req.ProductIDs())
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	views := make([]*queries.QuoteView, 0, len(bySupplier))
	for _, sid := range sortedSupplierIDs(bySupplier) {
		offerings := bySupplier[sid]
		q := c.generator.Generate(req, sid, supplierNameOf(offerings), offerings)
		if err := c.quoteRepo.Save(ctx, q); err != nil {
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		views = append(views, queries.NewQuoteView(q, now))
	}

	c.logger.Info("quotes generated", "request_id", requestID, "suppliers", len(views))
	return views, nil
}

func (c *quoteCommandsImpl) GenerateBundled(ctx context.Context, requestIDs []uuid.UUID) ([]*queries.QuoteView, error) {
	if len(requestIDs) == 0 {
		return nil, errs.ErrNoRequestsGiven
	}

	// The id list is a set; a request named twice contributes once.
	seen := make(map[uuid.UUID]struct{}, len(requestIDs))
	requests := make([]*request.Request, 0, len(requestIDs))
	productSet := make(map[uuid.UUID]struct{})
	var productIDs []uuid.UUID
	for _, id := range requestIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		req, err := c.findRequest(ctx, id)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
		for _, pid := range req.ProductIDs() {
			if _, ok := productSet[pid]; ok {
				continue
			}
			productSet[pid] = struct{}{}
			productIDs = append(productIDs, pid)
		}
	}

	bySupplier, err := c.loadOfferings(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	bundles := c.bundler.Bundle(requests, bySupplier)
	views := make([]*queries.QuoteView, 0, len(bundles))
	for _, b := range bundles {
		if err := c.quoteRepo.Save(ctx, b); err != nil {
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		views = append(views, queries.NewQuoteView(b, now))
	}

	c.logger.Info("bundled quotes generated", "requests", len(requests), "suppliers", len(views))
	return views, nil
}

func (c *quoteCommandsImpl) findRequest(ctx context.Context, id uuid.UUID) (*request.Request, error) {
	req, err := c.requestRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrRequestNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return req, nil
}

func (c *quoteCommandsImpl) loadOfferings(ctx context.Context, productIDs []uuid.UUID) (map[uuid.UUID]map[uuid.UUID]*catalog.Offering, error) {
	offerings, err := c.offeringRepo.FindByProducts(ctx, productIDs)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return groupOfferings(offerings), nil
}

// groupOfferings indexes offerings by supplier, then by product within
// the supplier.
func groupOfferings(offerings []*catalog.Offering) map[uuid.UUID]map[uuid.UUID]*catalog.Offering {
	bySupplier := make(map[uuid.UUID]map[uuid.UUID]*catalog.Offering)
	for _, o := range offerings {
		byProduct, ok := bySupplier[o.SupplierID()]
		if !ok {
			byProduct = make(map[uuid.UUID]*catalog.Offering)
			bySupplier[o.SupplierID()] = byProduct
		}
		byProduct[o.ProductID()] = o
	}
	return bySupplier
}

func sortedSupplierIDs(bySupplier map[uuid.UUID]map[uuid.UUID]*catalog.Offering) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(bySupplier))
	for sid := range bySupplier {
		ids = append(ids, sid)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	return ids
}

func supplierNameOf(offerings map[uuid.UUID]*catalog.Offering) string {
	for _, o := range offerings {
		return o.SupplierName()
	}
	return ""
}
