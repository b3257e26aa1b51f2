package api

import (
	"net/http"

	reqdto "procure-chef/internal/handler/dto/request"
	resdto "procure-chef/internal/handler/dto/response"
	"procure-chef/internal/handler/httperr"
	"procure-chef/internal/pkg/errs"
	"procure-chef/internal/usecase/commands"
	"procure-chef/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type QuoteHandler struct {
	commands commands.QuoteCommands
	queries  queries.QuoteQueries
}

func NewQuoteHandler(cmds commands.QuoteCommands, qrs queries.QuoteQueries) *QuoteHandler {
	return &QuoteHandler{
		commands: cmds,
		queries:  qrs,
	}
}

// @Summary Quotes for one request
// @Description Generates fresh quotes by default; pass refresh=false to return previously generated ones.
// @Tags quotes
// @Produce json
// @Param id path string true "Request ID"
// @Param refresh query bool false "Regenerate quotes" default(true)
// @Success 200 {array} resdto.QuoteResponse
// @Failure 404 {object} httperr.Response
// @Router /requests/{id}/quotes [get]
func (h *QuoteHandler) ListForRequest(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request ID", nil)
		return
	}

	if c.DefaultQuery("refresh", "true") == "false" {
		views, err := h.queries.ListByRequest(c.Request.Context(), id)
		if err != nil {
			h.abortWithQuoteError(c, err)
			return
		}
		c.JSON(http.StatusOK, resdto.FromQuoteViews(views))
		return
	}

	views, err := h.commands.GenerateForRequest(c.Request.Context(), id)
	if err != nil {
		h.abortWithQuoteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuoteViews(views))
}

// @Summary Bundled quotes across requests
// @Description Aggregates the given requests per supplier and re-prices at combined volume.
// @Tags quotes
// @Accept json
// @Produce json
// @Param request body reqdto.BundleQuotesRequest true "Requests to bundle"
// @Success 200 {array} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /quotes/bundled [post]
func (h *QuoteHandler) Bundle(c *gin.Context) {
	var req reqdto.BundleQuotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	views, err := h.commands.GenerateBundled(c.Request.Context(), req.RequestIDs)
	if err != nil {
		h.abortWithQuoteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuoteViews(views))
}

func (h *QuoteHandler) abortWithQuoteError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrRequestNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Request not found", nil)
	case errs.Is(err, errs.ErrNoRequestsGiven):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "No requests given", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
