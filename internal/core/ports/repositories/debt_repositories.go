package repositories

import (
	"context"

	"github.com/SscSPs/treasury_ledger/internal/core/domain"
)

// DebtHolderReader defines read operations for debt holders
type DebtHolderReader interface {
	FindDebtHolder(ctx context.Context, holderType domain.HolderType, holderID string) (*domain.DebtHolder, error)
	ListDebtHolders(ctx context.Context) ([]domain.DebtHolder, error)
}

// DebtHolderTxSupport defines debt holder operations available inside a unit of work.
type DebtHolderTxSupport interface {
	// LockDebtHolder returns apperrors.ErrNotFound when the holder has no record yet.
	LockDebtHolder(ctx context.Context, holderType domain.HolderType, holderID string) (*domain.DebtHolder, error)

	// SaveDebtHolder inserts a new holder (Version 0) or updates an existing one
	// with an optimistic Version check.
	SaveDebtHolder(ctx context.Context, holder domain.DebtHolder) error
}
