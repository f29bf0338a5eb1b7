package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/treasury_ledger/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx, so one repository
// implementation serves point reads and units of work.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	db querier
}

// Postgres error codes the store maps to application kinds.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeSerializationFail   = "40001"
	codeDeadlockDetected    = "40P01"
	codeLockNotAvailable    = "55P03"
	codeQueryCanceled       = "57014"
)

// mapError classifies a pgx error. msg describes the attempted operation.
func mapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: %s", apperrors.ErrNotFound, msg)
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return apperrors.NewAppError(apperrors.KindDuplicate, msg+": already exists", err)
		case codeForeignKeyViolation:
			return apperrors.NewAppError(apperrors.KindUnknownAccount, msg+": referenced row does not exist", err)
		case codeCheckViolation:
			return apperrors.NewAppError(apperrors.KindInternal, msg+": constraint "+pgErr.ConstraintName+" violated", err)
		case codeSerializationFail, codeDeadlockDetected, codeLockNotAvailable, codeQueryCanceled:
			return apperrors.NewAppError(apperrors.KindContention, msg+": row lock not acquired", err)
		}
		return apperrors.NewAppError(apperrors.KindInternal, msg, err)
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) || pgconn.SafeToRetry(err) || pgconn.Timeout(err) {
		return apperrors.NewAppError(apperrors.KindStorageUnavailable, msg, err)
	}
	return apperrors.NewAppError(apperrors.KindInternal, msg, err)
}
