package api

import (
	"net/http"

	resdto "procure-chef/internal/handler/dto/response"
	"procure-chef/internal/handler/httperr"
	"procure-chef/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OfferingHandler struct {
	queries queries.OfferingQueries
}

func NewOfferingHandler(qrs queries.OfferingQueries) *OfferingHandler {
	return &OfferingHandler{queries: qrs}
}

// @Summary Supplier offerings for a product
// @Tags offerings
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {array} resdto.OfferingResponse
// @Router /products/{id}/offerings [get]
func (h *OfferingHandler) ListByProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid product ID", nil)
		return
	}

	views, err := h.queries.ListByProduct(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOfferingViews(views))
}
