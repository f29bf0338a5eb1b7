package services

import (
	"context"

	"github.com/SscSPs/treasury_ledger/internal/core/domain"
	"github.com/SscSPs/treasury_ledger/internal/dto"
)

// TreasuryWriterSvc is the single mutation gateway for accounts and the ledger.
// Every operation is atomic: it either applies all of its effects or none.
type TreasuryWriterSvc interface {
	RecordSale(ctx context.Context, req dto.RecordSaleRequest) (*domain.SalePosting, error)
	RecordPurchaseOrder(ctx context.Context, req dto.RecordPurchaseOrderRequest) (*domain.PurchasePosting, error)
	RecordPayment(ctx context.Context, req dto.RecordPaymentRequest) (*domain.PaymentPosting, error)
	RecordManualMovement(ctx context.Context, req dto.RecordMovementRequest) (*domain.LedgerEntry, error)
	RecordTransfer(ctx context.Context, req dto.RecordTransferRequest) (*domain.TransferPosting, error)

	// ReverseEntry undoes a manual movement or a whole transfer with new entries.
	ReverseEntry(ctx context.Context, entryID string, req dto.ReverseEntryRequest) ([]domain.LedgerEntry, error)
}

// TreasuryReaderSvc exposes the monetary state of entities and debt holders.
type TreasuryReaderSvc interface {
	GetSale(ctx context.Context, saleID string) (*domain.Sale, error)
	GetPurchaseOrder(ctx context.Context, orderID string) (*domain.PurchaseOrder, error)
	GetDebtHolder(ctx context.Context, holderType domain.HolderType, holderID string) (*domain.DebtHolder, error)
}

// TreasurySvcFacade combines the treasury read and write operations
type TreasurySvcFacade interface {
	TreasuryWriterSvc
	TreasuryReaderSvc
}

// ReconciliationSvc replays the ledger against the cached projections.
type ReconciliationSvc interface {
	Reconcile(ctx context.Context, repair bool) (*domain.ReconciliationReport, error)
}
