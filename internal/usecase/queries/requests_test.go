//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"procure-chef/internal/domain/catalog"
	"procure-chef/internal/domain/quote"
	"procure-chef/internal/infra"
	"procure-chef/internal/pkg/clock"
	"procure-chef/internal/pkg/errs"
	"procure-chef/internal/pkg/optimistic"
	"procure-chef/internal/usecase/queries"
	"procure-chef/tests/common/builder"
	queriesmock "procure-chef/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testTime = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func notFoundErr() error {
	return infra.WrapRepoErr("request not found", pgx.ErrNoRows, infra.KindNotFound)
}

func TestRequestQueriesGetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("served from the optimistic collection when present", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reader := queriesmock.NewMockRequestReader(ctrl)

		view := builder.NewRequestBuilder().BuildView()
		store := optimistic.NewStore[uuid.UUID, *queries.RequestView]()
		store.Load(map[uuid.UUID]*queries.RequestView{view.ID: view})

		q := queries.NewRequestQueries(store, reader)

		got, err := q.GetByID(ctx, view.ID)
		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("falls back to the repository for unknown ids", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reader := queriesmock.NewMockRequestReader(ctrl)
		store := optimistic.NewStore[uuid.UUID, *queries.RequestView]()

		req := builder.NewRequestBuilder().BuildReconstructed()
		reader.EXPECT().FindByID(gomock.Any(), req.ID()).Return(req, nil)

		q := queries.NewRequestQueries(store, reader)

		got, err := q.GetByID(ctx, req.ID())
		require.NoError(t, err)
		assert.Equal(t, req.ID(), got.ID)
		assert.Equal(t, req.Title(), got.Title)
	})

	t.Run("unknown everywhere maps to not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reader := queriesmock.NewMockRequestReader(ctrl)
		store := optimistic.NewStore[uuid.UUID, *queries.RequestView]()

		id := uuid.New()
		reader.EXPECT().FindByID(gomock.Any(), id).Return(nil, notFoundErr())

		q := queries.NewRequestQueries(store, reader)

		_, err := q.GetByID(ctx, id)
		assert.ErrorIs(t, err, errs.ErrRequestNotFound)
	})
}

func TestRequestQueriesList(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := queriesmock.NewMockRequestReader(ctrl)
	store := optimistic.NewStore[uuid.UUID, *queries.RequestView]()

	older := builder.NewRequestBuilder().
		With(func(b *builder.RequestBuilder) { b.Now = testTime }).
		BuildView()
	newer := builder.NewRequestBuilder().
		With(func(b *builder.RequestBuilder) { b.Now = testTime.Add(time.Hour) }).
		BuildView()
	store.Load(map[uuid.UUID]*queries.RequestView{
		newer.ID: newer,
		older.ID: older,
	})

	q := queries.NewRequestQueries(store, reader)

	views, err := q.List(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, older.ID, views[0].ID)
	assert.Equal(t, newer.ID, views[1].ID)
}

func TestQuoteQueriesListByRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := queriesmock.NewMockQuoteReader(ctrl)
	clk := clock.NewMockClock(testTime)

	fresh := builder.NewQuoteBuilder().
		With(func(b *builder.QuoteBuilder) {
			b.CreatedAt = testTime.Add(-time.Hour)
			b.ExpiresAt = testTime.Add(71 * time.Hour)
		}).
		BuildDomain()
	stale := builder.NewQuoteBuilder().
		With(func(b *builder.QuoteBuilder) {
			b.CreatedAt = testTime.Add(-100 * time.Hour)
			b.ExpiresAt = testTime.Add(-28 * time.Hour)
		}).
		BuildDomain()

	requestID := uuid.New()
	reader.EXPECT().FindByRequestID(gomock.Any(), requestID).
		Return([]*quote.Quote{fresh, stale}, nil)

	q := queries.NewQuoteQueries(reader, clk)

	views, err := q.ListByRequest(context.Background(), requestID)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "received", views[0].Status)
	assert.Equal(t, "expired", views[1].Status, "stored quote past expiry must read as expired")
}

func TestOfferingQueriesListByProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := queriesmock.NewMockOfferingReader(ctrl)

	offering := builder.NewOfferingBuilder().WithStandardTiers().BuildReconstructed()
	reader.EXPECT().FindByProduct(gomock.Any(), offering.ProductID()).
		Return([]*catalog.Offering{offering}, nil)

	q := queries.NewOfferingQueries(reader)

	views, err := q.ListByProduct(context.Background(), offering.ProductID())
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, offering.SupplierName(), views[0].SupplierName)
	require.Len(t, views[0].Tiers, 3)
	assert.True(t, views[0].Tiers[1].Price.Equal(decimal.RequireFromString("9.50")))
}
