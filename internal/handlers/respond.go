package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/treasury_ledger/internal/apperrors"
	"github.com/SscSPs/treasury_ledger/internal/dto"
	"github.com/SscSPs/treasury_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// idempotencyHeader carries the caller's command key.
const idempotencyHeader = "Idempotency-Key"

// statusForKind maps an error kind to its HTTP status.
func statusForKind(kind apperrors.Kind) int {
	switch kind {
	case apperrors.KindValidation:
		return http.StatusBadRequest
	case apperrors.KindUnknownAccount, apperrors.KindNotFound:
		return http.StatusNotFound
	case apperrors.KindDuplicate, apperrors.KindContention:
		return http.StatusConflict
	case apperrors.KindInsufficientFunds, apperrors.KindSameAccountTransfer, apperrors.KindOverpaymentRejected:
		return http.StatusUnprocessableEntity
	case apperrors.KindStorageUnavailable:
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// respondOK writes a successful envelope.
func respondOK(c *gin.Context, status int, data any) {
	c.JSON(status, dto.NewResult(data, nil))
}

// respondError writes a failed envelope. Internal details are not exposed for
// server-side kinds.
func respondError(c *gin.Context, err error) {
	result := dto.NewResult(nil, err)
	status := statusForKind(result.ErrorKind)
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if status >= http.StatusInternalServerError && result.ErrorKind != apperrors.KindStorageUnavailable {
		logger.Error("Request failed", slog.String("error_kind", string(result.ErrorKind)), slog.String("error", err.Error()))
		result.Message = "internal error"
	}
	if result.Retryable {
		c.Header("Retry-After", "1")
	}
	c.JSON(status, result)
}

// bindJSON decodes the body into req, answering 400 on malformed input.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind JSON", slog.String("error", err.Error()))
		respondError(c, apperrors.NewAppError(apperrors.KindValidation, "invalid request format: "+err.Error(), nil))
		return false
	}
	return true
}
