package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/treasury_ledger/internal/apperrors"
	portssvc "github.com/SscSPs/treasury_ledger/internal/core/ports/services"
	"github.com/SscSPs/treasury_ledger/internal/dto"
	"github.com/SscSPs/treasury_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	accountService portssvc.AccountReaderSvc
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(as portssvc.AccountReaderSvc) *accountHandler {
	return &accountHandler{accountService: as}
}

// RegisterAccountRoutes registers the read-only account routes.
func RegisterAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountReaderSvc) {
	h := newAccountHandler(accountService)

	accounts := rg.Group("/accounts")
	{
		accounts.GET("", h.listAccounts)
		accounts.GET("/:key", h.getAccount)
		accounts.GET("/:key/entries", h.listEntries)
	}
}

// listAccounts godoc
// @Summary List accounts
// @Description Returns every account with its current balance and cumulative flows
// @Tags accounts
// @Produce  json
// @Success 200 {object} dto.Result{data=[]dto.AccountResponse}
// @Failure 401 {object} dto.Result "Unauthorized"
// @Failure 500 {object} dto.Result "Internal error"
// @Security BearerAuth
// @Router /api/v1/accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	accounts, err := h.accountService.ListAccounts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, dto.ToAccountResponses(accounts))
}

// getAccount godoc
// @Summary Get an account
// @Tags accounts
// @Produce  json
// @Param   key path string true "Account key"
// @Success 200 {object} dto.Result{data=dto.AccountResponse}
// @Failure 401 {object} dto.Result "Unauthorized"
// @Failure 404 {object} dto.Result "Not found"
// @Failure 500 {object} dto.Result "Internal error"
// @Security BearerAuth
// @Router /api/v1/accounts/{key} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	key := c.Param("key")
	account, err := h.accountService.GetAccount(c.Request.Context(), key)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, dto.ToAccountResponse(account))
}

// listEntries godoc
// @Summary List an account's entries
// @Description Returns one page of an account's ledger, oldest first
// @Tags accounts
// @Produce  json
// @Param   key path string true "Account key"
// @Param   from query string false "Inclusive lower bound (RFC3339)"
// @Param   to query string false "Exclusive upper bound (RFC3339)"
// @Param   limit query int false "Page size (1-500)"
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.Result{data=dto.ListEntriesResponse}
// @Failure 400 {object} dto.Result "Validation error"
// @Failure 401 {object} dto.Result "Unauthorized"
// @Failure 404 {object} dto.Result "Not found"
// @Failure 500 {object} dto.Result "Internal error"
// @Security BearerAuth
// @Router /api/v1/accounts/{key}/entries [get]
func (h *accountHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	key := c.Param("key")

	var params dto.ListEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query parameters for ListEntries", slog.String("error", err.Error()))
		respondError(c, apperrors.NewAppError(apperrors.KindValidation, "invalid query parameters: "+err.Error(), nil))
		return
	}

	page, err := h.accountService.ListEntries(c.Request.Context(), key, params)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, page)
}
