package handlers_test

import (
	"context"

	"github.com/SscSPs/treasury_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/treasury_ledger/internal/core/ports/services"
	"github.com/SscSPs/treasury_ledger/internal/dto"
	"github.com/SscSPs/treasury_ledger/internal/platform/config"
	"github.com/stretchr/testify/mock"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) GetAccount(ctx context.Context, key string) (*domain.Account, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) ListEntries(ctx context.Context, accountKey string, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error) {
	args := m.Called(ctx, accountKey, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListEntriesResponse), args.Error(1)
}

func (m *MockAccountService) BootstrapCatalog(ctx context.Context, specs []config.AccountSpec) (int, error) {
	args := m.Called(ctx, specs)
	return args.Int(0), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Mock TreasuryService ---
type MockTreasuryService struct {
	mock.Mock
}

func (m *MockTreasuryService) RecordSale(ctx context.Context, req dto.RecordSaleRequest) (*domain.SalePosting, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SalePosting), args.Error(1)
}

func (m *MockTreasuryService) RecordPurchaseOrder(ctx context.Context, req dto.RecordPurchaseOrderRequest) (*domain.PurchasePosting, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchasePosting), args.Error(1)
}

func (m *MockTreasuryService) RecordPayment(ctx context.Context, req dto.RecordPaymentRequest) (*domain.PaymentPosting, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentPosting), args.Error(1)
}

func (m *MockTreasuryService) RecordManualMovement(ctx context.Context, req dto.RecordMovementRequest) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockTreasuryService) RecordTransfer(ctx context.Context, req dto.RecordTransferRequest) (*domain.TransferPosting, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransferPosting), args.Error(1)
}

func (m *MockTreasuryService) ReverseEntry(ctx context.Context, entryID string, req dto.ReverseEntryRequest) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, entryID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockTreasuryService) GetSale(ctx context.Context, saleID string) (*domain.Sale, error) {
	args := m.Called(ctx, saleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sale), args.Error(1)
}

func (m *MockTreasuryService) GetPurchaseOrder(ctx context.Context, orderID string) (*domain.PurchaseOrder, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseOrder), args.Error(1)
}

func (m *MockTreasuryService) GetDebtHolder(ctx context.Context, holderType domain.HolderType, holderID string) (*domain.DebtHolder, error) {
	args := m.Called(ctx, holderType, holderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DebtHolder), args.Error(1)
}

var _ portssvc.TreasurySvcFacade = (*MockTreasuryService)(nil)

// --- Mock ReconciliationService ---
type MockReconciliationService struct {
	mock.Mock
}

func (m *MockReconciliationService) Reconcile(ctx context.Context, repair bool) (*domain.ReconciliationReport, error) {
	args := m.Called(ctx, repair)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReconciliationReport), args.Error(1)
}

var _ portssvc.ReconciliationSvc = (*MockReconciliationService)(nil)

// --- Mock store ping ---
type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
