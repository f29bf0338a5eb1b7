package repositories

import "context"

// TreasuryTx is everything a unit of work may read and write.
type TreasuryTx interface {
	AccountTxSupport
	LedgerTxSupport
	EntityTxSupport
	DebtHolderTxSupport
}

// TreasuryStore is the durable store collaborator: point reads, the
// append-only ledger, and an atomic unit-of-work primitive.
type TreasuryStore interface {
	AccountRepositoryFacade
	LedgerReader
	EntityReader
	DebtHolderReader
	TransactionManager

	// Ping reports whether the store is reachable.
	Ping(ctx context.Context) error
}

// RepositoryProvider holds all repository interfaces needed by services.
type RepositoryProvider struct {
	Store       TreasuryStore
	Idempotency IdempotencyStore
}
