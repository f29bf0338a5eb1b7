package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/treasury_ledger/internal/apperrors"
	"github.com/SscSPs/treasury_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/treasury_ledger/internal/core/ports/services"
	"github.com/SscSPs/treasury_ledger/internal/dto"
	"github.com/SscSPs/treasury_ledger/internal/handlers"
	"github.com/SscSPs/treasury_ledger/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type envelope struct {
	OK        bool            `json:"ok"`
	Data      json.RawMessage `json:"data"`
	ErrorKind string          `json:"errorKind"`
	Message   string          `json:"message"`
	Retryable bool            `json:"retryable"`
}

// --- Test Suite ---
type HandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	accounts     *MockAccountService
	treasury     *MockTreasuryService
	reconciler   *MockReconciliationService
	store        *MockPinger
	jwtSecret    string
	requestingID string
}

func TestHandlers(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.requestingID = "operator-1"

	suite.accounts = new(MockAccountService)
	suite.treasury = new(MockTreasuryService)
	suite.reconciler = new(MockReconciliationService)
	suite.store = new(MockPinger)

	cfg := &config.Config{JWTSecret: suite.jwtSecret}
	services := &portssvc.ServiceContainer{
		Account:        suite.accounts,
		Treasury:       suite.treasury,
		Reconciliation: suite.reconciler,
	}
	handlers.RegisterRoutes(suite.router, cfg, services, suite.store, nil)
}

// generateTestToken creates a dummy JWT for testing.
func (suite *HandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "treasury-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *HandlerTestSuite) do(method, url string, body any, headers map[string]string) (*httptest.ResponseRecorder, envelope) {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.requestingID))
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	var env envelope
	if w.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

// --- Test Cases ---

func (suite *HandlerTestSuite) TestHealth() {
	suite.store.On("Ping", mock.Anything).Return(nil).Once()
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusOK, w.Code)

	suite.store.On("Ping", mock.Anything).Return(apperrors.NewAppError(apperrors.KindStorageUnavailable, "database ping failed", nil)).Once()
	w = httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusServiceUnavailable, w.Code)
	suite.store.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestMissingToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/accounts", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.accounts.AssertNotCalled(suite.T(), "ListAccounts", mock.Anything)
}

func (suite *HandlerTestSuite) TestRecordSale_PassesIdempotencyKeyAndActor() {
	posting := &domain.SalePosting{Sale: domain.Sale{SaleID: "sale-1", TotalAmount: decimal.NewFromInt(680000)}}
	suite.treasury.On("RecordSale",
		mock.MatchedBy(func(ctx context.Context) bool {
			return ctx != nil
		}),
		mock.MatchedBy(func(req dto.RecordSaleRequest) bool {
			return req.ClientID == "cliente-1" && req.Quantity == 100 && req.IdempotencyKey == "key-1" &&
				req.UnitSalePrice.Equal(decimal.NewFromInt(6300))
		}),
	).Return(posting, nil).Once()

	body := `{"clientID":"cliente-1","quantity":100,"unitSalePrice":"6300","unitCostPrice":6300}`
	w, env := suite.do(http.MethodPost, "/api/v1/sales", body, map[string]string{"Idempotency-Key": "key-1"})

	suite.Equal(http.StatusCreated, w.Code)
	suite.True(env.OK)
	var got domain.SalePosting
	suite.Require().NoError(json.Unmarshal(env.Data, &got))
	suite.Equal("sale-1", got.Sale.SaleID)
	suite.True(got.Sale.TotalAmount.Equal(decimal.NewFromInt(680000)))
	suite.treasury.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestMalformedBody() {
	w, env := suite.do(http.MethodPost, "/api/v1/transfers", `{"fromAccountKey":`, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.False(env.OK)
	suite.Equal(string(apperrors.KindValidation), env.ErrorKind)
	suite.treasury.AssertNotCalled(suite.T(), "RecordTransfer", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestErrorKindsMapToStatus() {
	tests := []struct {
		name      string
		err       error
		status    int
		retryable bool
	}{
		{"same account", apperrors.ErrSameAccountTransfer, http.StatusUnprocessableEntity, false},
		{"insufficient funds", fmt.Errorf("%w: azteca", apperrors.ErrInsufficientFunds), http.StatusUnprocessableEntity, false},
		{"unknown account", apperrors.ErrUnknownAccount, http.StatusNotFound, false},
		{"contention", apperrors.ErrContention, http.StatusConflict, true},
		{"storage", apperrors.ErrStorageUnavailable, http.StatusServiceUnavailable, true},
		{"duplicate", apperrors.ErrDuplicate, http.StatusConflict, false},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.treasury.On("RecordTransfer", mock.Anything, mock.Anything).Return(nil, tt.err).Once()

			body := map[string]any{"fromAccountKey": "azteca", "toAccountKey": "leftie", "amount": "10"}
			w, env := suite.do(http.MethodPost, "/api/v1/transfers", body, nil)

			suite.Equal(tt.status, w.Code)
			suite.False(env.OK)
			suite.Equal(string(apperrors.KindOf(tt.err)), env.ErrorKind)
			suite.Equal(tt.retryable, env.Retryable)
			if tt.retryable {
				suite.Equal("1", w.Header().Get("Retry-After"))
			}
		})
	}
}

func (suite *HandlerTestSuite) TestInternalErrorIsMasked() {
	suite.treasury.On("GetSale", mock.Anything, "sale-9").
		Return(nil, apperrors.NewAppError(apperrors.KindInternal, "pg: relation sales is broken", nil)).Once()

	w, env := suite.do(http.MethodGet, "/api/v1/sales/sale-9", nil, nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Equal("internal error", env.Message)
}

func (suite *HandlerTestSuite) TestListEntries_BindsQuery() {
	next := "bmV4dA=="
	suite.accounts.On("ListEntries", mock.Anything, "boveda_monte",
		mock.MatchedBy(func(p dto.ListEntriesParams) bool {
			return p.Limit == 2 && p.From != nil && p.From.Equal(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)) && p.To == nil
		}),
	).Return(&dto.ListEntriesResponse{Entries: []domain.LedgerEntry{{EntryID: "e1"}, {EntryID: "e2"}}, NextToken: &next}, nil).Once()

	w, env := suite.do(http.MethodGet, "/api/v1/accounts/boveda_monte/entries?limit=2&from=2026-01-01T00:00:00Z", nil, nil)

	suite.Equal(http.StatusOK, w.Code)
	var page dto.ListEntriesResponse
	suite.Require().NoError(json.Unmarshal(env.Data, &page))
	suite.Len(page.Entries, 2)
	suite.Require().NotNil(page.NextToken)
	suite.Equal(next, *page.NextToken)
	suite.accounts.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestGetAccount_Unknown() {
	suite.accounts.On("GetAccount", mock.Anything, "nope").Return(nil, apperrors.ErrUnknownAccount).Once()

	w, env := suite.do(http.MethodGet, "/api/v1/accounts/nope", nil, nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal(string(apperrors.KindUnknownAccount), env.ErrorKind)
}

func (suite *HandlerTestSuite) TestGetDebtHolder() {
	holder := domain.NewDebtHolder(domain.HolderClient, "cliente-1")
	suite.treasury.On("GetDebtHolder", mock.Anything, domain.HolderClient, "cliente-1").Return(&holder, nil).Once()

	w, env := suite.do(http.MethodGet, "/api/v1/debt-holders/client/cliente-1", nil, nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.True(env.OK)
	suite.treasury.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestReverseEntry_EmptyBody() {
	suite.treasury.On("ReverseEntry", mock.Anything, "entry-1", dto.ReverseEntryRequest{IdempotencyKey: "rev-1"}).
		Return([]domain.LedgerEntry{{EntryID: "entry-2"}}, nil).Once()

	w, env := suite.do(http.MethodPost, "/api/v1/entries/entry-1/reversal", nil, map[string]string{"Idempotency-Key": "rev-1"})

	suite.Equal(http.StatusCreated, w.Code)
	suite.True(env.OK)
	suite.treasury.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestReconcile_Repair() {
	suite.reconciler.On("Reconcile", mock.Anything, true).Return(&domain.ReconciliationReport{Repaired: true}, nil).Once()

	w, env := suite.do(http.MethodPost, "/api/v1/reconciliation", map[string]bool{"repair": true}, nil)

	suite.Equal(http.StatusOK, w.Code)
	var report domain.ReconciliationReport
	suite.Require().NoError(json.Unmarshal(env.Data, &report))
	suite.True(report.Repaired)
	suite.reconciler.AssertExpectations(suite.T())
}
