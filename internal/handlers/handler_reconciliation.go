package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/treasury_ledger/internal/core/ports/services"
	"github.com/SscSPs/treasury_ledger/internal/dto"
	"github.com/SscSPs/treasury_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

type reconciliationHandler struct {
	reconciliationService portssvc.ReconciliationSvc
}

// RegisterReconciliationRoutes registers the ledger replay route.
func RegisterReconciliationRoutes(rg *gin.RouterGroup, reconciliationService portssvc.ReconciliationSvc) {
	h := &reconciliationHandler{reconciliationService: reconciliationService}
	rg.POST("/reconciliation", h.reconcile)
}

// reconcile godoc
// @Summary Reconcile projections
// @Description Replays the ledger and reports drift between stored and replayed balances; repair rewrites drifted projections
// @Tags reconciliation
// @Accept  json
// @Produce  json
// @Param   request body dto.ReconcileRequest false "Reconciliation options"
// @Success 200 {object} dto.Result{data=domain.ReconciliationReport}
// @Failure 400 {object} dto.Result "Validation error"
// @Failure 401 {object} dto.Result "Unauthorized"
// @Failure 409 {object} dto.Result "Duplicate or contention"
// @Failure 500 {object} dto.Result "Internal error"
// @Failure 503 {object} dto.Result "Storage unavailable"
// @Security BearerAuth
// @Router /api/v1/reconciliation [post]
func (h *reconciliationHandler) reconcile(c *gin.Context) {
	var req dto.ReconcileRequest
	if c.Request.ContentLength > 0 && !bindJSON(c, &req) {
		return
	}

	report, err := h.reconciliationService.Reconcile(c.Request.Context(), req.Repair)
	if err != nil {
		respondError(c, err)
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Reconciliation finished",
		slog.Bool("repair", req.Repair),
		slog.Bool("clean", report.Clean()),
	)
	respondOK(c, http.StatusOK, report)
}
