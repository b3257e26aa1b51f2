package commands

import (
	"context"
	"log/slog"
	"time"

	"procure-chef/internal/domain/request"
	"procure-chef/internal/infra"
	"procure-chef/internal/pkg/clock"
	"procure-chef/internal/pkg/errs"
	"procure-chef/internal/pkg/optimistic"
	"procure-chef/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RequestItemInput struct {
	ProductID uuid.UUID
	Quantity  decimal.Decimal
	Unit      string
}

type RequestInput struct {
	Title     string
	Items     []RequestItemInput
	NeededBy  time.Time
	Priority  string
	CreatedBy uuid.UUID
}

type RequestCommands interface {
	// Hydrate loads the persisted requests into the optimistic collection.
	Hydrate(ctx context.Context) error
	Create(ctx context.Context, input RequestInput) (*queries.RequestView, error)
	Update(ctx context.Context, id uuid.UUID, input RequestInput) (*queries.RequestView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// requestCommandsImpl routes every request mutation through the optimistic
// coordinator: the in-memory collection is updated speculatively, the
// repository call is the asynchronous confirmation, and a failed
// confirmation restores the pre-mutation collection before the error is
// surfaced.
type requestCommandsImpl struct {
	store       *optimistic.Store[uuid.UUID, *queries.RequestView]
	coordinator *optimistic.Coordinator[uuid.UUID, *queries.RequestView]
	repo        RequestRepository
	quotes      queries.QuoteReader
	clock       clock.Clock
	logger      *slog.Logger
}

func NewRequestCommands(
	store *optimistic.Store[uuid.UUID, *queries.RequestView],
	coordinator *optimistic.Coordinator[uuid.UUID, *queries.RequestView],
	repo RequestRepository,
	quotes queries.QuoteReader,
	clk clock.Clock,
	logger *slog.Logger,
) RequestCommands {
	return &requestCommandsImpl{
		store:       store,
		coordinator: coordinator,
		repo:        repo,
		quotes:      quotes,
		clock:       clk,
		logger:      logger,
	}
}

func (c *requestCommandsImpl) Hydrate(ctx context.Context) error {
	requests, err := c.repo.FindAll(ctx)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	collection := make(map[uuid.UUID]*queries.RequestView, len(requests))
	for _, req := range requests {
		collection[req.ID()] = queries.NewRequestView(req)
	}
	c.store.Load(collection)
	c.logger.Info("request collection hydrated", "count", len(collection))
	return nil
}

func (c *requestCommandsImpl) Create(ctx context.Context, input RequestInput) (*queries.RequestView, error) {
	req, err := c.buildRequest(input)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	now := c.clock.Now()
	view := queries.NewRequestView(req)
	view.CreatedAt = now
	view.UpdatedAt = now

	pending := c.coordinator.Run(ctx,
		func(collection map[uuid.UUID]*queries.RequestView) map[uuid.UUID]*queries.RequestView {
			collection[view.ID] = view
			return collection
		},
		func(ctx context.Context) error {
			return c.repo.Create(ctx, req)
		},
	)
	if _, err := pending.Wait(ctx); err != nil {
		return nil, err
	}
	return view, nil
}

func (c *requestCommandsImpl) Update(ctx context.Context, id uuid.UUID, input RequestInput) (*queries.RequestView, error) {
	existing, err := c.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrRequestNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	referencing, err := c.quotes.FindByRequestID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if len(referencing) > 0 {
		return nil, errs.ErrRequestImmutable
	}

	input.CreatedBy = existing.CreatedBy()
	draft, err := c.buildRequest(input)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	updated := request.ReconstructRequest(
		id,
		draft.Title(),
		draft.Items(),
		draft.NeededBy(),
		draft.Priority(),
		existing.CreatedBy(),
		existing.CreatedAt(),
		c.clock.Now(),
	)

	view := queries.NewRequestView(updated)
	pending := c.coordinator.Run(ctx,
		func(collection map[uuid.UUID]*queries.RequestView) map[uuid.UUID]*queries.RequestView {
			collection[id] = view
			return collection
		},
		func(ctx context.Context) error {
			return c.repo.Update(ctx, updated)
		},
	)
	if _, err := pending.Wait(ctx); err != nil {
		return nil, err
	}
	return view, nil
}

func (c *requestCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := c.store.Get(id); !ok {
		if _, err := c.repo.FindByID(ctx, id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrRequestNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}

	pending := c.coordinator.Run(ctx,
		func(collection map[uuid.UUID]*queries.RequestView) map[uuid.UUID]*queries.RequestView {
			delete(collection, id)
			return collection
		},
		func(ctx context.Context) error {
			return c.repo.Delete(ctx, id)
		},
	)
	_, err := pending.Wait(ctx)
	return err
}

func (c *requestCommandsImpl) buildRequest(input RequestInput) (*request.Request, error) {
	items := make([]request.Item, 0, len(input.Items))
	for _, in := range input.Items {
		item, err := request.NewItem(uuid.New(), in.ProductID, in.Quantity, in.Unit)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	priority, err := request.NewPriority(input.Priority)
	if err != nil {
		return nil, err
	}

	return request.NewRequest(input.Title, items, input.NeededBy, priority, input.CreatedBy, c.clock.Now())
}
