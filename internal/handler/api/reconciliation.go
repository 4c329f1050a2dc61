package api

import (
	"net/http"
	"strconv"

	resdto "travel-checkout/internal/handler/dto/response"
	"travel-checkout/internal/handler/httperr"
	"travel-checkout/internal/pkg/errs"
	"travel-checkout/internal/usecase/commands"
	"travel-checkout/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReconciliationHandler struct {
	cmds commands.ReconciliationCommands
	q    queries.ReconciliationQueries
}

func NewReconciliationHandler(cmds commands.ReconciliationCommands, q queries.ReconciliationQueries) *ReconciliationHandler {
	return &ReconciliationHandler{cmds: cmds, q: q}
}

// @Summary List reconciliations
// @Description List checkouts flagged for manual review
// @Tags reconciliations
// @Produce json
// @Security BearerAuth
// @Param status query string false "open (default) or resolved"
// @Param limit query int false "Max items (default 50, max 200)"
// @Success 200 {object} resdto.ReconciliationListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /reconciliations [get]
func (h *ReconciliationHandler) List(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit", nil)
			return
		}
		limit = n
	}

	views, err := h.q.List(c.Request.Context(), c.Query("status"), limit)
	if err != nil {
		if errs.Is(err, queries.ErrInvalidReconciliationStatus) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid status", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	resp, err := resdto.FromReconciliationViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Resolve reconciliation
// @Description Mark an open reconciliation entry as resolved
// @Tags reconciliations
// @Security BearerAuth
// @Param id path string true "Reconciliation ID"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reconciliations/{id}/resolve [post]
func (h *ReconciliationHandler) Resolve(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	if err := h.cmds.Resolve(c.Request.Context(), id); err != nil {
		if errs.Is(err, commands.ErrReconciliationNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
