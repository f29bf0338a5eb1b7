package services

import (
	"context"

	"github.com/SscSPs/treasury_ledger/internal/core/domain"
	"github.com/SscSPs/treasury_ledger/internal/dto"
	"github.com/SscSPs/treasury_ledger/internal/platform/config"
)

// AccountReaderSvc defines read-only account and ledger operations
type AccountReaderSvc interface {
	// GetAccount returns the account or apperrors.ErrUnknownAccount.
	GetAccount(ctx context.Context, key string) (*domain.Account, error)

	// ListAccounts returns the whole catalog ordered by key.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// ListEntries returns a page of an account's ledger entries in sequence order.
	ListEntries(ctx context.Context, accountKey string, params dto.ListEntriesParams) (*dto.ListEntriesResponse, error)
}

// AccountBootstrapSvc seeds the fixed account catalog.
type AccountBootstrapSvc interface {
	// BootstrapCatalog validates the catalog and creates missing accounts.
	// It returns the number of accounts created.
	BootstrapCatalog(ctx context.Context, specs []config.AccountSpec) (int, error)
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountBootstrapSvc
}
