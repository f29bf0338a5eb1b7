package pgsql

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/treasury_ledger/internal/apperrors"
	"github.com/SscSPs/treasury_ledger/internal/core/domain"
	"github.com/SscSPs/treasury_ledger/internal/models"
	"github.com/SscSPs/treasury_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const accountColumns = `account_key, name, category, currency_code, initial_balance, current_balance,
	cumulative_inflow, cumulative_outflow, opening_inflow, opening_outflow, is_active, allow_overdraft,
	applied_seq, version, created_at, created_by, last_updated_at, last_updated_by`

// PgxAccountRepository reads and writes the accounts table.
type PgxAccountRepository struct {
	BaseRepository
}

func newPgxAccountRepository(db querier) *PgxAccountRepository {
	return &PgxAccountRepository{BaseRepository{db: db}}
}

func scanAccount(row pgx.Row) (domain.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountKey,
		&m.Name,
		&m.Category,
		&m.CurrencyCode,
		&m.InitialBalance,
		&m.CurrentBalance,
		&m.CumulativeInflow,
		&m.CumulativeOutflow,
		&m.OpeningInflow,
		&m.OpeningOutflow,
		&m.IsActive,
		&m.AllowOverdraft,
		&m.AppliedSeq,
		&m.Version,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return domain.Account{}, err
	}
	return mapping.ToDomainAccount(m), nil
}

func (r *PgxAccountRepository) queryAccounts(ctx context.Context, query string, args ...any) ([]domain.Account, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "failed to query accounts")
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, mapError(err, "failed to scan account row")
		}
		accounts = append(accounts, acc)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "error iterating account rows")
	}
	return accounts, nil
}

// FindAccountByKey retrieves an account by its key.
func (r *PgxAccountRepository) FindAccountByKey(ctx context.Context, key string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_key = $1;`
	acc, err := scanAccount(r.db.QueryRow(ctx, query, key))
	if err != nil {
		return nil, mapError(err, "account "+key)
	}
	return &acc, nil
}

// ListAccounts returns every account ordered by key.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	return r.queryAccounts(ctx, `SELECT `+accountColumns+` FROM accounts ORDER BY account_key;`)
}

// SeedAccounts inserts catalog accounts that do not exist yet.
func (r *PgxAccountRepository) SeedAccounts(ctx context.Context, accounts []domain.Account) (int, error) {
	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		ON CONFLICT (account_key) DO NOTHING;
	`
	batch := &pgx.Batch{}
	for _, acc := range accounts {
		m := mapping.ToModelAccount(acc)
		batch.Queue(query,
			m.AccountKey, m.Name, m.Category, m.CurrencyCode,
			m.InitialBalance, m.CurrentBalance, m.CumulativeInflow, m.CumulativeOutflow,
			m.OpeningInflow, m.OpeningOutflow, m.IsActive, m.AllowOverdraft, m.AppliedSeq, m.Version,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		)
	}

	br := r.db.SendBatch(ctx, batch)
	defer br.Close()
	created := 0
	for _, acc := range accounts {
		tag, err := br.Exec()
		if err != nil {
			return created, mapError(err, "failed to seed account "+acc.Key)
		}
		created += int(tag.RowsAffected())
	}
	return created, nil
}

// LockAccounts loads the accounts with FOR UPDATE. Rows are locked in key
// order so concurrent units of work cannot deadlock on them.
func (r *PgxAccountRepository) LockAccounts(ctx context.Context, keys []string) (map[string]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_key = ANY($1) ORDER BY account_key FOR UPDATE;`
	accounts, err := r.queryAccounts(ctx, query, keys)
	if err != nil {
		return nil, err
	}
	locked := make(map[string]domain.Account, len(accounts))
	for _, acc := range accounts {
		locked[acc.Key] = acc
	}
	var missing []string
	for _, key := range keys {
		if _, ok := locked[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUnknownAccount, strings.Join(missing, ", "))
	}
	return locked, nil
}

// SaveAccounts writes projections with an optimistic version check.
func (r *PgxAccountRepository) SaveAccounts(ctx context.Context, accounts []domain.Account) error {
	query := `
		UPDATE accounts
		SET current_balance = $2, cumulative_inflow = $3, cumulative_outflow = $4, applied_seq = $5,
		    is_active = $6, last_updated_at = $7, last_updated_by = $8, version = version + 1
		WHERE account_key = $1 AND version = $9;
	`
	batch := &pgx.Batch{}
	for _, acc := range accounts {
		m := mapping.ToModelAccount(acc)
		batch.Queue(query,
			m.AccountKey, m.CurrentBalance, m.CumulativeInflow, m.CumulativeOutflow, m.AppliedSeq,
			m.IsActive, m.LastUpdatedAt, m.LastUpdatedBy, m.Version,
		)
	}

	br := r.db.SendBatch(ctx, batch)
	defer br.Close()
	for _, acc := range accounts {
		tag, err := br.Exec()
		if err != nil {
			return mapError(err, "failed to save account "+acc.Key)
		}
		if tag.RowsAffected() != 1 {
			return apperrors.Newf(apperrors.KindContention, "account %s was modified concurrently", acc.Key)
		}
	}
	return nil
}
