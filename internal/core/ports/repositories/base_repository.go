package repositories

import "context"

// TxFunc is the body of a unit of work. Returning an error rolls everything back.
type TxFunc func(ctx context.Context, tx TreasuryTx) error

// TransactionManager runs a unit of work atomically: every write issued through
// the TreasuryTx commits together or not at all.
type TransactionManager interface {
	WithinTx(ctx context.Context, fn TxFunc) error
}
