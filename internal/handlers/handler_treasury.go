package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/treasury_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/treasury_ledger/internal/core/ports/services"
	"github.com/SscSPs/treasury_ledger/internal/dto"
	"github.com/SscSPs/treasury_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// treasuryHandler exposes the treasury commands and entity reads.
type treasuryHandler struct {
	treasuryService portssvc.TreasurySvcFacade
}

func newTreasuryHandler(ts portssvc.TreasurySvcFacade) *treasuryHandler {
	return &treasuryHandler{treasuryService: ts}
}

// RegisterTreasuryRoutes registers sales, purchase orders, payments, movements,
// transfers, reversals and debt-holder routes.
func RegisterTreasuryRoutes(rg *gin.RouterGroup, treasuryService portssvc.TreasurySvcFacade) {
	h := newTreasuryHandler(treasuryService)

	sales := rg.Group("/sales")
	{
		sales.POST("", h.recordSale)
		sales.GET("/:id", h.getSale)
	}

	orders := rg.Group("/purchase-orders")
	{
		orders.POST("", h.recordPurchaseOrder)
		orders.GET("/:id", h.getPurchaseOrder)
	}

	rg.POST("/payments", h.recordPayment)
	rg.POST("/movements", h.recordMovement)
	rg.POST("/transfers", h.recordTransfer)
	rg.POST("/entries/:id/reversal", h.reverseEntry)
	rg.GET("/debt-holders/:type/:id", h.getDebtHolder)
}

// recordSale godoc
// @Summary Record a sale
// @Description Prices the sale, splits it across vault, freight and profit, and records the client debt
// @Tags sales
// @Accept  json
// @Produce  json
// @Param   sale body dto.RecordSaleRequest true "Sale details"
// @Param   Idempotency-Key header string false "Command key, rejected as duplicate on replay"
// @Success 201 {object} dto.Result{data=domain.SalePosting}
// @Failure 400 {object} dto.Result "Validation error"
// @Failure 401 {object} dto.Result "Unauthorized"
// @Failure 404 {object} dto.Result "Unknown account"
// @Failure 409 {object} dto.Result "Duplicate or contention"
// @Failure 422 {object} dto.Result "Business rule rejected"
// @Failure 500 {object} dto.Result "Internal error"
// @Failure 503 {object} dto.Result "Storage unavailable"
// @Security BearerAuth
// @Router /api/v1/sales [post]
func (h *treasuryHandler) recordSale(c *gin.Context) {
	var req dto.RecordSaleRequest
	if !bindJSON(c, &req) {
		return
	}
	req.IdempotencyKey = c.GetHeader(idempotencyHeader)

	posting, err := h.treasuryService.RecordSale(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Sale recorded", slog.String("sale_id", posting.Sale.SaleID))
	respondOK(c, http.StatusCreated, posting)
}

// getSale godoc
// @Summary Get a sale
// @Tags sales
// @Produce  json
// @Param   id path string true "Sale ID"
// @Success 200 {object} dto.Result{data=domain.Sale}
// @Failure 401 {object} dto.Result "Unauthorized"
// @Failure 404 {object} dto.Result "Not found"
// @Failure 500 {object} dto.Result "Internal error"
// @Security BearerAuth
// @Router /api/v1/sales/{id} [get]
func (h *treasuryHandler) getSale(c *gin.Context) {
	sale, err := h.treasuryService.GetSale(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, sale)
}

// recordPurchaseOrder godoc
// @Summary Record a purchase order
// @Description Costs the order and records the distributor debt, debiting the source account for any initial payment
// @Tags purchase-orders
// @Accept  json
// @Produce  json
// @Param   order body dto.RecordPurchaseOrderRequest true "Purchase order details"
// @Param   Idempotency-Key header string false "Command key, rejected as duplicate on replay"
// @Success 201 {object} dto.Result{data=domain.PurchasePosting}
// @Failure 400 {object} dto.Result "Validation error"
// @Failure 401 {object} dto.Result "Unauthorized"
// @Failure 404 {object} dto.Result "Unknown account"
// @Failure 409 {object} dto.Result "Duplicate or contention"
// @Failure 422 {object} dto.Result "Business rule rejected"
// @Failure 500 {object} dto.Result "Internal error"
// @Failure 503 {object} dto.Result "Storage unavailable"
// @Security BearerAuth
// @Router /api/v1/purchase-orders [post]
func (h *treasuryHandler) recordPurchaseOrder(c *gin.Context) {
	var req dto.RecordPurchaseOrderRequest
	if !bindJSON(c, &req) {
		return
	}
	req.IdempotencyKey = c.GetHeader(idempotencyHeader)

	posting, err := h.treasuryService.RecordPurchaseOrder(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Purchase order recorded", slog.String("order_id", posting.Order.OrderID))
	respondOK(c, http.StatusCreated, posting)
}

// getPurchaseOrder godoc
// @Summary Get a purchase order
// @Tags purchase-orders
// @Produce  json
// @Param   id path string true "Purchase order ID"
// @Success 200 {object} dto.Result{data=domain.PurchaseOrder}
// @Failure 401 {object} dto.Result "Unauthorized"
// @Failure 404 {object} dto.Result "Not found"
// @Failure 500 {object} dto.Result "Internal error"
// @Security BearerAuth
// @Router /api/v1/purchase-orders/{id} [get]
func (h *treasuryHandler) getPurchaseOrder(c *gin.Context) {
	order, err := h.treasuryService.GetPurchaseOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, order)
}

// recordPayment godoc
// @Summary Record a payment
// @Description Applies a payment to a sale or purchase order and settles the matching debt holder
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   payment body dto.RecordPaymentRequest true "Payment details"
// @Param   Idempotency-Key header string false "Command key, rejected as duplicate on replay"
// @Success 201 {object} dto.Result{data=domain.PaymentPosting}
// @Failure 400 {object} dto.Result "Validation error"
// @Failure 401 {object} dto.Result "Unauthorized"
// @Failure 404 {object} dto.Result "Not found"
// @Failure 409 {object} dto.Result "Duplicate or contention"
// @Failure 422 {object} dto.Result "Business rule rejected"
// @Failure 500 {object} dto.Result "Internal error"
// @Failure 503 {object} dto.Result "Storage unavailable"
// @Security BearerAuth
// @Router /api/v1/payments [post]
func (h *treasuryHandler) recordPayment(c *gin.Context) {
	var req dto.RecordPaymentRequest
	if !bindJSON(c, &req) {
		return
	}
	req.IdempotencyKey = c.GetHeader(idempotencyHeader)

	posting, err := h.treasuryService.RecordPayment(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, posting)
}

// recordMovement godoc
// @Summary Record a manual movement
// @Description Posts a single income or expense entry
// @Tags movements
// @Accept  json
// @Produce  json
// @Param   movement body dto.RecordMovementRequest true "Movement details"
// @Param   Idempotency-Key header string false "Command key, rejected as duplicate on replay"
// @Success 201 {object} dto.Result{data=domain.LedgerEntry}
// @Failure 400 {object} dto.Result "Validation error"
// @Failure 401 {object} dto.Result "Unauthorized"
// @Failure 404 {object} dto.Result "Unknown account"
// @Failure 409 {object} dto.Result "Duplicate or contention"
// @Failure 422 {object} dto.Result "Business rule rejected"
// @Failure 500 {object} dto.Result "Internal error"
// @Failure 503 {object} dto.Result "Storage unavailable"
// @Security BearerAuth
// @Router /api/v1/movements [post]
func (h *treasuryHandler) recordMovement(c *gin.Context) {
	var req dto.RecordMovementRequest
	if !bindJSON(c, &req) {
		return
	}
	req.IdempotencyKey = c.GetHeader(idempotencyHeader)

	entry, err := h.treasuryService.RecordManualMovement(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, entry)
}

// recordTransfer godoc
// @Summary Transfer between accounts
// @Description Posts a transfer_out and transfer_in pair atomically
// @Tags transfers
// @Accept  json
// @Produce  json
// @Param   transfer body dto.RecordTransferRequest true "Transfer details"
// @Param   Idempotency-Key header string false "Command key, rejected as duplicate on replay"
// @Success 201 {object} dto.Result{data=domain.TransferPosting}
// @Failure 400 {object} dto.Result "Validation error"
// @Failure 401 {object} dto.Result "Unauthorized"
// @Failure 404 {object} dto.Result "Unknown account"
// @Failure 409 {object} dto.Result "Duplicate or contention"
// @Failure 422 {object} dto.Result "Business rule rejected"
// @Failure 500 {object} dto.Result "Internal error"
// @Failure 503 {object} dto.Result "Storage unavailable"
// @Security BearerAuth
// @Router /api/v1/transfers [post]
func (h *treasuryHandler) recordTransfer(c *gin.Context) {
	var req dto.RecordTransferRequest
	if !bindJSON(c, &req) {
		return
	}
	req.IdempotencyKey = c.GetHeader(idempotencyHeader)

	posting, err := h.treasuryService.RecordTransfer(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, posting)
}

// reverseEntry godoc
// @Summary Reverse an entry
// @Description Posts the opposite of a manual movement or transfer. The body is optional
// @Tags entries
// @Accept  json
// @Produce  json
// @Param   id path string true "Entry ID"
// @Param   request body dto.ReverseEntryRequest false "Reversal memo"
// @Param   Idempotency-Key header string false "Command key, rejected as duplicate on replay"
// @Success 201 {object} dto.Result{data=[]domain.LedgerEntry}
// @Failure 400 {object} dto.Result "Validation error"
// @Failure 401 {object} dto.Result "Unauthorized"
// @Failure 404 {object} dto.Result "Not found"
// @Failure 409 {object} dto.Result "Duplicate or contention"
// @Failure 422 {object} dto.Result "Business rule rejected"
// @Failure 500 {object} dto.Result "Internal error"
// @Failure 503 {object} dto.Result "Storage unavailable"
// @Security BearerAuth
// @Router /api/v1/entries/{id}/reversal [post]
func (h *treasuryHandler) reverseEntry(c *gin.Context) {
	var req dto.ReverseEntryRequest
	if c.Request.ContentLength > 0 && !bindJSON(c, &req) {
		return
	}
	req.IdempotencyKey = c.GetHeader(idempotencyHeader)

	entries, err := h.treasuryService.ReverseEntry(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, entries)
}

// getDebtHolder godoc
// @Summary Get a debt holder
// @Tags debt-holders
// @Produce  json
// @Param   type path string true "Holder type" Enums(client, distributor)
// @Param   id path string true "Holder ID"
// @Success 200 {object} dto.Result{data=domain.DebtHolder}
// @Failure 401 {object} dto.Result "Unauthorized"
// @Failure 404 {object} dto.Result "Not found"
// @Failure 500 {object} dto.Result "Internal error"
// @Security BearerAuth
// @Router /api/v1/debt-holders/{type}/{id} [get]
func (h *treasuryHandler) getDebtHolder(c *gin.Context) {
	holder, err := h.treasuryService.GetDebtHolder(c.Request.Context(), domain.HolderType(c.Param("type")), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, holder)
}
