package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/treasury_ledger/internal/apperrors"
	portsrepo "github.com/SscSPs/treasury_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxStore is the PostgreSQL TreasuryStore. Point reads go straight to the
// pool; units of work run inside one database transaction.
type PgxStore struct {
	*PgxAccountRepository
	*PgxLedgerRepository
	*PgxEntityRepository
	*PgxDebtRepository

	pool          *pgxpool.Pool
	dbLockTimeout time.Duration
}

var _ portsrepo.TreasuryStore = (*PgxStore)(nil)

// pgxTx is the TreasuryTx handed to a unit of work.
type pgxTx struct {
	*PgxAccountRepository
	*PgxLedgerRepository
	*PgxEntityRepository
	*PgxDebtRepository
}

var _ portsrepo.TreasuryTx = (*pgxTx)(nil)

func newPgxTx(tx pgx.Tx) *pgxTx {
	return &pgxTx{
		PgxAccountRepository: newPgxAccountRepository(tx),
		PgxLedgerRepository:  newPgxLedgerRepository(tx),
		PgxEntityRepository:  newPgxEntityRepository(tx),
		PgxDebtRepository:    newPgxDebtRepository(tx),
	}
}

// NewTreasuryStore builds the store over pool. dbLockTimeout bounds every row
// lock wait inside a unit of work; zero leaves the server default.
func NewTreasuryStore(pool *pgxpool.Pool, dbLockTimeout time.Duration) *PgxStore {
	return &PgxStore{
		PgxAccountRepository: newPgxAccountRepository(pool),
		PgxLedgerRepository:  newPgxLedgerRepository(pool),
		PgxEntityRepository:  newPgxEntityRepository(pool),
		PgxDebtRepository:    newPgxDebtRepository(pool),
		pool:                 pool,
		dbLockTimeout:        dbLockTimeout,
	}
}

// NewRepositoryProvider wires the store with the given idempotency store.
func NewRepositoryProvider(pool *pgxpool.Pool, dbLockTimeout time.Duration, idem portsrepo.IdempotencyStore) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		Store:       NewTreasuryStore(pool, dbLockTimeout),
		Idempotency: idem,
	}
}

// Ping checks the pool.
func (s *PgxStore) Ping(ctx context.Context) error {
	if err := s.pool.Ping(ctx); err != nil {
		return apperrors.NewAppError(apperrors.KindStorageUnavailable, "database ping failed", err)
	}
	return nil
}

// Begin starts a new database transaction
func (s *PgxStore) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.KindStorageUnavailable, "failed to begin transaction", err)
	}
	return tx, nil
}

// Commit commits a transaction
func (s *PgxStore) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return mapError(err, "failed to commit transaction")
	}
	return nil
}

// Rollback rolls back a transaction
func (s *PgxStore) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return apperrors.NewAppError(apperrors.KindStorageUnavailable, "failed to rollback transaction", err)
	}
	return nil
}

// WithinTx runs fn in one transaction and commits when it returns nil.
func (s *PgxStore) WithinTx(ctx context.Context, fn portsrepo.TxFunc) error {
	tx, err := s.Begin(ctx)
	if err != nil {
		return err
	}
	// Will be ignored if the transaction is committed successfully
	defer s.Rollback(context.WithoutCancel(ctx), tx) //nolint:errcheck

	if s.dbLockTimeout > 0 {
		stmt := fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", s.dbLockTimeout.Milliseconds())
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return mapError(err, "failed to set lock timeout")
		}
	}

	if err := fn(ctx, newPgxTx(tx)); err != nil {
		return err
	}
	return s.Commit(ctx, tx)
}
