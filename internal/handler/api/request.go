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

type RequestHandler struct {
	commands commands.RequestCommands
	queries  queries.RequestQueries
}

func NewRequestHandler(cmds commands.RequestCommands, qrs queries.RequestQueries) *RequestHandler {
	return &RequestHandler{
		commands: cmds,
		queries:  qrs,
	}
}

// @Summary Create procurement request
// @Tags requests
// @Accept json
// @Produce json
// @Param request body reqdto.CreateRequestRequest true "Request payload"
// @Success 201 {object} resdto.RequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /requests [post]
func (h *RequestHandler) Create(c *gin.Context) {
	var req reqdto.CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.commands.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		h.abortWithMutationError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRequestView(view))
}

// @Summary List procurement requests
// @Tags requests
// @Produce json
// @Success 200 {array} resdto.RequestResponse
// @Router /requests [get]
func (h *RequestHandler) List(c *gin.Context) {
	views, err := h.queries.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRequestViews(views))
}

// @Summary Get procurement request
// @Tags requests
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} resdto.RequestResponse
// @Failure 404 {object} httperr.Response
// @Router /requests/{id} [get]
func (h *RequestHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request ID", nil)
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, errs.ErrRequestNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Request not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRequestView(view))
}

// @Summary Update procurement request
// @Tags requests
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param request body reqdto.UpdateRequestRequest true "Request payload"
// @Success 200 {object} resdto.RequestResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /requests/{id} [put]
func (h *RequestHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request ID", nil)
		return
	}

	var req reqdto.UpdateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.commands.Update(c.Request.Context(), id, req.ToInput())
	if err != nil {
		h.abortWithMutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRequestView(view))
}

// @Summary Delete procurement request
// @Tags requests
// @Param id path string true "Request ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Router /requests/{id} [delete]
func (h *RequestHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request ID", nil)
		return
	}

	if err := h.commands.Delete(c.Request.Context(), id); err != nil {
		h.abortWithMutationError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *RequestHandler) abortWithMutationError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrRequestNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Request not found", nil)
	case errs.Is(err, errs.ErrRequestImmutable):
		httperr.AbortWithError(c, http.StatusConflict, err, "Request is referenced by a quote", nil)
	case errs.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Domain validation failed", nil)
	case errs.Is(err, errs.ErrConfirmationFailed):
		// The optimistic change has already been rolled back.
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Mutation could not be confirmed", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
