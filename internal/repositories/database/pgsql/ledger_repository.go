package pgsql

import (
	"context"
	"strconv"
	"strings"

	"github.com/SscSPs/treasury_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/treasury_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/treasury_ledger/internal/models"
	"github.com/SscSPs/treasury_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const entryColumns = `seq, entry_id, account_key, kind, amount, currency_code, memo, counter_account_key,
	entity_type, entity_id, correlation_id, reverses_entry_id, balance_after, created_at, created_by`

// PgxLedgerRepository appends to and reads the ledger_entries table.
type PgxLedgerRepository struct {
	BaseRepository
}

func newPgxLedgerRepository(db querier) *PgxLedgerRepository {
	return &PgxLedgerRepository{BaseRepository{db: db}}
}

func scanEntry(row pgx.Row) (domain.LedgerEntry, error) {
	var m models.LedgerEntry
	err := row.Scan(
		&m.Seq,
		&m.EntryID,
		&m.AccountKey,
		&m.Kind,
		&m.Amount,
		&m.CurrencyCode,
		&m.Memo,
		&m.CounterAccountKey,
		&m.EntityType,
		&m.EntityID,
		&m.CorrelationID,
		&m.ReversesEntryID,
		&m.BalanceAfter,
		&m.CreatedAt,
		&m.CreatedBy,
	)
	if err != nil {
		return domain.LedgerEntry{}, err
	}
	return mapping.ToDomainLedgerEntry(m), nil
}

func (r *PgxLedgerRepository) queryEntries(ctx context.Context, query string, args ...any) ([]domain.LedgerEntry, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "failed to query ledger entries")
	}
	defer rows.Close()

	entries := []domain.LedgerEntry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, mapError(err, "failed to scan ledger entry row")
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "error iterating ledger entry rows")
	}
	return entries, nil
}

// FindEntryByID retrieves a single entry.
func (r *PgxLedgerRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM ledger_entries WHERE entry_id = $1;`
	e, err := scanEntry(r.db.QueryRow(ctx, query, entryID))
	if err != nil {
		return nil, mapError(err, "ledger entry "+entryID)
	}
	return &e, nil
}

// ListEntriesByAccount returns an account's entries ordered by sequence.
func (r *PgxLedgerRepository) ListEntriesByAccount(ctx context.Context, accountKey string, filter portsrepo.EntryFilter) ([]domain.LedgerEntry, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + entryColumns + ` FROM ledger_entries WHERE account_key = $1 AND seq > $2`)
	args := []any{accountKey, filter.AfterSeq}
	if filter.From != nil {
		args = append(args, *filter.From)
		sb.WriteString(" AND created_at >= $" + strconv.Itoa(len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		sb.WriteString(" AND created_at < $" + strconv.Itoa(len(args)))
	}
	sb.WriteString(" ORDER BY seq")
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		sb.WriteString(" LIMIT $" + strconv.Itoa(len(args)))
	}
	return r.queryEntries(ctx, sb.String(), args...)
}

// ListEntries returns entries after afterSeq in sequence order.
func (r *PgxLedgerRepository) ListEntries(ctx context.Context, afterSeq int64, limit int) ([]domain.LedgerEntry, error) {
	if limit <= 0 {
		return r.queryEntries(ctx, `SELECT `+entryColumns+` FROM ledger_entries WHERE seq > $1 ORDER BY seq;`, afterSeq)
	}
	return r.queryEntries(ctx, `SELECT `+entryColumns+` FROM ledger_entries WHERE seq > $1 ORDER BY seq LIMIT $2;`, afterSeq, limit)
}

// AppendEntries inserts the entries in one batch. The table assigns seq.
func (r *PgxLedgerRepository) AppendEntries(ctx context.Context, entries []domain.LedgerEntry) ([]domain.LedgerEntry, error) {
	query := `
		INSERT INTO ledger_entries (entry_id, account_key, kind, amount, currency_code, memo, counter_account_key,
			entity_type, entity_id, correlation_id, reverses_entry_id, balance_after, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING seq;
	`
	batch := &pgx.Batch{}
	for _, e := range entries {
		m := mapping.ToModelLedgerEntry(e)
		batch.Queue(query,
			m.EntryID, m.AccountKey, m.Kind, m.Amount, m.CurrencyCode, m.Memo, m.CounterAccountKey,
			m.EntityType, m.EntityID, m.CorrelationID, m.ReversesEntryID, m.BalanceAfter, m.CreatedAt, m.CreatedBy,
		)
	}

	br := r.db.SendBatch(ctx, batch)
	defer br.Close()
	saved := make([]domain.LedgerEntry, len(entries))
	for i, e := range entries {
		if err := br.QueryRow().Scan(&e.Seq); err != nil {
			return nil, mapError(err, "failed to append ledger entry "+e.EntryID)
		}
		saved[i] = e
	}
	return saved, nil
}

// FindEntriesByCorrelationID returns every entry of one logical operation.
func (r *PgxLedgerRepository) FindEntriesByCorrelationID(ctx context.Context, correlationID string) ([]domain.LedgerEntry, error) {
	return r.queryEntries(ctx, `SELECT `+entryColumns+` FROM ledger_entries WHERE correlation_id = $1 ORDER BY seq;`, correlationID)
}

// HasReversal reports whether a reversing entry references entryID.
func (r *PgxLedgerRepository) HasReversal(ctx context.Context, entryID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM ledger_entries WHERE reverses_entry_id = $1);`, entryID).Scan(&exists)
	if err != nil {
		return false, mapError(err, "failed to check reversal of "+entryID)
	}
	return exists, nil
}
