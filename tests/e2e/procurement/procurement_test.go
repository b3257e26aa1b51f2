//go:build e2e

package procurement_test

import (
	"net/http"
	"testing"
	"time"

	"procure-chef/internal/handler/dto/request"
	"procure-chef/internal/handler/dto/response"
	"procure-chef/tests/common/builder"
	"procure-chef/tests/common/dbtest"
	"procure-chef/tests/common/httptest"
	"procure-chef/tests/e2e"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	requestsURL      = "/api/requests"
	bundledQuotesURL = "/api/quotes/bundled"
)

type ProcurementSuite struct {
	e2e.SharedSuite
}

func TestProcurementSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ProcurementSuite))
}

func (s *ProcurementSuite) createRequest(productID uuid.UUID, quantity int64) response.RequestResponse {
	t := s.T()
	t.Helper()

	body := builder.NewRequestBuilder().
		WithOnlyItem(productID, decimal.NewFromInt(quantity), "kg").
		BuildCreateRequestDTO()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, requestsURL, body)
	require.Equal(t, http.StatusCreated, w.Code, "request creation should succeed")

	var created response.RequestResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
	require.NotEqual(t, uuid.Nil, created.ID)
	return created
}

// =============================================================================
// Request lifecycle
// =============================================================================

func (s *ProcurementSuite) TestRequestLifecycle() {
	s.Run("created request can be fetched back", func() {
		t := s.T()

		created := s.createRequest(uuid.New(), 8)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, requestsURL+"/"+created.ID.String(), nil)
		require.Equal(t, http.StatusOK, w.Code)

		var fetched response.RequestResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &fetched))
		require.Equal(t, created.ID, fetched.ID)
		require.Equal(t, "Weekly produce order", fetched.Title)
		require.Equal(t, "normal", fetched.Priority)
		require.Len(t, fetched.Items, 1)
		require.True(t, fetched.Items[0].Quantity.Equal(decimal.NewFromInt(8)))
		require.Equal(t, "kg", fetched.Items[0].Unit)
	})

	s.Run("listing includes the created request", func() {
		t := s.T()

		created := s.createRequest(uuid.New(), 3)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, requestsURL, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var listed []response.RequestResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &listed))

		found := false
		for _, r := range listed {
			if r.ID == created.ID {
				found = true
			}
		}
		require.True(t, found, "listing should contain the created request")
	})

	s.Run("update replaces title, items and priority", func() {
		t := s.T()

		created := s.createRequest(uuid.New(), 5)

		update := request.UpdateRequestRequest{
			Title: "Urgent seafood restock",
			Items: []request.RequestItemPayload{
				{ProductID: uuid.New(), Quantity: decimal.NewFromInt(12), Unit: "box"},
			},
			NeededBy: time.Now().Add(48 * time.Hour),
			Priority: "urgent",
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, requestsURL+"/"+created.ID.String(), update)
		require.Equal(t, http.StatusOK, w.Code)

		var updated response.RequestResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &updated))
		require.Equal(t, created.ID, updated.ID)
		require.Equal(t, "Urgent seafood restock", updated.Title)
		require.Equal(t, "urgent", updated.Priority)
		require.Len(t, updated.Items, 1)
		require.Equal(t, "box", updated.Items[0].Unit)
	})

	s.Run("deleted request is gone", func() {
		t := s.T()

		created := s.createRequest(uuid.New(), 2)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, requestsURL+"/"+created.ID.String(), nil)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, requestsURL+"/"+created.ID.String(), nil)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Request not found")
	})

	s.Run("past needed-by date is rejected", func() {
		t := s.T()

		body := builder.NewRequestBuilder().
			With(func(b *builder.RequestBuilder) {
				b.NeededBy = time.Now().Add(-24 * time.Hour)
			}).
			BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, requestsURL, body)
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "Domain validation failed")
	})
}

// =============================================================================
// Quote generation
// =============================================================================

func (s *ProcurementSuite) TestQuoteGeneration() {
	s.Run("quantity inside the first tier is priced at the tier rate", func() {
		t := s.T()

		supplierID := dbtest.CreateTestSupplier(t, s.DB, "Valley Fresh Produce")
		productID := uuid.New()
		dbtest.CreateTestOffering(t, s.DB, supplierID, productID, "12.00", true)

		created := s.createRequest(productID, 8)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, requestsURL+"/"+created.ID.String()+"/quotes", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var quotes []response.QuoteResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &quotes))
		require.Len(t, quotes, 1)

		q := quotes[0]
		require.Equal(t, supplierID, q.SupplierID)
		require.Equal(t, "Valley Fresh Produce", q.SupplierName)
		require.Equal(t, []uuid.UUID{created.ID}, q.RequestIDs)
		require.Equal(t, "received", q.Status)
		require.Equal(t, 72*time.Hour, q.ExpiresAt.Sub(q.CreatedAt))

		require.Len(t, q.Items, 1)
		require.True(t, q.Items[0].InStock)
		require.True(t, q.Items[0].UnitPrice.Equal(decimal.RequireFromString("10.00")),
			"8 kg should land in the 1-10 tier, got %s", q.Items[0].UnitPrice)
		require.True(t, q.TotalAmount.Equal(decimal.RequireFromString("80.00")))
	})

	s.Run("no offerings means no quotes", func() {
		t := s.T()

		created := s.createRequest(uuid.New(), 4)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, requestsURL+"/"+created.ID.String()+"/quotes", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var quotes []response.QuoteResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &quotes))
		require.Empty(t, quotes)
	})

	s.Run("refresh=false lists stored quotes without regenerating", func() {
		t := s.T()

		supplierID := dbtest.CreateTestSupplier(t, s.DB, "Harbor Seafood Co")
		productID := uuid.New()
		dbtest.CreateTestOffering(t, s.DB, supplierID, productID, "12.00", true)

		created := s.createRequest(productID, 8)
		listURL := requestsURL + "/" + created.ID.String() + "/quotes"

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, listURL+"?refresh=false", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var quotes []response.QuoteResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &quotes))
		require.Empty(t, quotes, "nothing generated yet")

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, listURL, nil)
		require.Equal(t, http.StatusOK, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, listURL+"?refresh=false", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &quotes))
		require.Len(t, quotes, 1, "stored quote should be listed, not duplicated")
	})

	s.Run("unknown request yields 404", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, requestsURL+"/"+uuid.New().String()+"/quotes", nil)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Request not found")
	})
}

// =============================================================================
// Bundled quotes
// =============================================================================

func (s *ProcurementSuite) TestBundledQuotes() {
	s.Run("combined volume crosses into a cheaper tier", func() {
		t := s.T()

		supplierID := dbtest.CreateTestSupplier(t, s.DB, "Valley Fresh Produce")
		productID := uuid.New()
		dbtest.CreateTestOffering(t, s.DB, supplierID, productID, "12.00", true)

		reqA := s.createRequest(productID, 8)
		reqB := s.createRequest(productID, 6)

		body := map[string]any{"request_ids": []string{reqA.ID.String(), reqB.ID.String()}}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bundledQuotesURL, body)
		require.Equal(t, http.StatusOK, w.Code)

		var quotes []response.QuoteResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &quotes))
		require.Len(t, quotes, 1)

		q := quotes[0]
		require.Equal(t, supplierID, q.SupplierID)
		require.Equal(t, []uuid.UUID{reqA.ID, reqB.ID}, q.RequestIDs)
		require.Equal(t, 168*time.Hour, q.ExpiresAt.Sub(q.CreatedAt))

		require.Len(t, q.Items, 2)
		for _, item := range q.Items {
			require.True(t, item.UnitPrice.Equal(decimal.RequireFromString("9.50")),
				"14 kg aggregate should land in the 11-50 tier, got %s", item.UnitPrice)
		}
		require.True(t, q.TotalAmount.Equal(decimal.RequireFromString("133.00")),
			"got %s", q.TotalAmount)
	})

	s.Run("one unknown request fails the whole bundle", func() {
		t := s.T()

		supplierID := dbtest.CreateTestSupplier(t, s.DB, "Valley Fresh Produce")
		productID := uuid.New()
		dbtest.CreateTestOffering(t, s.DB, supplierID, productID, "12.00", true)

		reqA := s.createRequest(productID, 8)

		body := map[string]any{"request_ids": []string{reqA.ID.String(), uuid.New().String()}}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bundledQuotesURL, body)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Request not found")
	})

	s.Run("empty request list is rejected", func() {
		t := s.T()

		body := map[string]any{"request_ids": []string{}}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bundledQuotesURL, body)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}
