package repositories

import (
	"context"

	"github.com/SscSPs/treasury_ledger/internal/core/domain"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByKey retrieves one account. Returns apperrors.ErrNotFound when absent.
	FindAccountByKey(ctx context.Context, key string) (*domain.Account, error)

	// ListAccounts returns every account ordered by key.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data outside of a unit of work.
type AccountWriter interface {
	// SeedAccounts inserts catalog accounts whose keys do not exist yet and
	// returns how many were created. Existing accounts are left untouched.
	SeedAccounts(ctx context.Context, accounts []domain.Account) (int, error)
}

// AccountTxSupport defines account operations available inside a unit of work.
type AccountTxSupport interface {
	// LockAccounts loads and locks the given accounts in key order.
	// Missing keys are reported with apperrors.ErrUnknownAccount.
	LockAccounts(ctx context.Context, keys []string) (map[string]domain.Account, error)

	// SaveAccounts writes updated projections. Each account's Version must match
	// the stored version; the stored version is then incremented.
	SaveAccounts(ctx context.Context, accounts []domain.Account) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
