//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"procure-chef/internal/handler/api"
	reqdto "procure-chef/internal/handler/dto/request"
	resdto "procure-chef/internal/handler/dto/response"
	"procure-chef/internal/pkg/errs"
	"procure-chef/internal/usecase/queries"
	"procure-chef/tests/common/builder"
	"procure-chef/tests/common/httptest"
	commandsmock "procure-chef/tests/mock/commands"
	queriesmock "procure-chef/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type QuoteHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockQuoteCommands
	mockQueries  *queriesmock.MockQuoteQueries
	handler      *api.QuoteHandler
}

func (s *QuoteHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockQuoteCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockQuoteQueries(s.mockCtrl)
	s.handler = api.NewQuoteHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/requests/:id/quotes", s.handler.ListForRequest)
	s.router.POST("/quotes/bundled", s.handler.Bundle)
}

func (s *QuoteHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestQuoteHandlerSuite(t *testing.T) {
	suite.Run(t, new(QuoteHandlerTestSuite))
}

func (s *QuoteHandlerTestSuite) TestListForRequest() {
	s.Run("default regenerates quotes", func() {
		requestID := uuid.New()
		view := builder.NewQuoteBuilder().BuildView()
		s.mockCommands.EXPECT().GenerateForRequest(gomock.Any(), requestID).
			Return([]*queries.QuoteView{view}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/requests/"+requestID.String()+"/quotes", nil)

		var resp []resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Require().Len(resp, 1)
		s.Equal(view.ID, resp[0].ID)
	})

	s.Run("refresh=false returns stored quotes", func() {
		requestID := uuid.New()
		view := builder.NewQuoteBuilder().BuildView()
		s.mockQueries.EXPECT().ListByRequest(gomock.Any(), requestID).
			Return([]*queries.QuoteView{view}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/requests/"+requestID.String()+"/quotes?refresh=false", nil)

		var resp []resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Require().Len(resp, 1)
		s.Equal(view.ID, resp[0].ID)
	})

	s.Run("unknown request", func() {
		requestID := uuid.New()
		s.mockCommands.EXPECT().GenerateForRequest(gomock.Any(), requestID).
			Return(nil, errs.ErrRequestNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/requests/"+requestID.String()+"/quotes", nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Request not found")
	})

	s.Run("malformed id", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/requests/nope/quotes", nil)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request ID")
	})
}

func (s *QuoteHandlerTestSuite) TestBundle() {
	s.Run("bundles the given requests", func() {
		requestIDs := []uuid.UUID{uuid.New(), uuid.New()}
		view := builder.NewQuoteBuilder().
			With(func(b *builder.QuoteBuilder) { b.RequestIDs = requestIDs }).
			BuildView()
		s.mockCommands.EXPECT().GenerateBundled(gomock.Any(), requestIDs).
			Return([]*queries.QuoteView{view}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/quotes/bundled",
			reqdto.BundleQuotesRequest{RequestIDs: requestIDs})

		var resp []resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Require().Len(resp, 1)
		s.Equal(requestIDs, resp[0].RequestIDs)
	})

	s.Run("empty id list rejected by binding", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/quotes/bundled",
			map[string]any{"request_ids": []string{}})
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("one unknown request fails the bundle", func() {
		requestIDs := []uuid.UUID{uuid.New()}
		s.mockCommands.EXPECT().GenerateBundled(gomock.Any(), requestIDs).
			Return(nil, errs.ErrRequestNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/quotes/bundled",
			reqdto.BundleQuotesRequest{RequestIDs: requestIDs})
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Request not found")
	})
}
