package pgsql

import (
	"context"

	"github.com/SscSPs/treasury_ledger/internal/apperrors"
	"github.com/SscSPs/treasury_ledger/internal/core/domain"
	"github.com/SscSPs/treasury_ledger/internal/models"
	"github.com/SscSPs/treasury_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const holderColumns = `holder_type, holder_id, total_billed, total_paid, outstanding, version,
	created_at, created_by, last_updated_at, last_updated_by`

// PgxDebtRepository persists debt holders.
type PgxDebtRepository struct {
	BaseRepository
}

func newPgxDebtRepository(db querier) *PgxDebtRepository {
	return &PgxDebtRepository{BaseRepository{db: db}}
}

func scanHolder(row pgx.Row) (domain.DebtHolder, error) {
	var m models.DebtHolder
	err := row.Scan(
		&m.HolderType, &m.HolderID, &m.TotalBilled, &m.TotalPaid, &m.Outstanding, &m.Version,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return domain.DebtHolder{}, err
	}
	return mapping.ToDomainDebtHolder(m), nil
}

func (r *PgxDebtRepository) findHolder(ctx context.Context, query string, holderType domain.HolderType, holderID string) (*domain.DebtHolder, error) {
	h, err := scanHolder(r.db.QueryRow(ctx, query, string(holderType), holderID))
	if err != nil {
		return nil, mapError(err, string(holderType)+" "+holderID)
	}
	return &h, nil
}

// FindDebtHolder retrieves a holder's running balance.
func (r *PgxDebtRepository) FindDebtHolder(ctx context.Context, holderType domain.HolderType, holderID string) (*domain.DebtHolder, error) {
	return r.findHolder(ctx, `SELECT `+holderColumns+` FROM debt_holders WHERE holder_type = $1 AND holder_id = $2;`, holderType, holderID)
}

// LockDebtHolder retrieves a holder with FOR UPDATE.
func (r *PgxDebtRepository) LockDebtHolder(ctx context.Context, holderType domain.HolderType, holderID string) (*domain.DebtHolder, error) {
	return r.findHolder(ctx, `SELECT `+holderColumns+` FROM debt_holders WHERE holder_type = $1 AND holder_id = $2 FOR UPDATE;`, holderType, holderID)
}

// ListDebtHolders returns every holder ordered by type and id.
func (r *PgxDebtRepository) ListDebtHolders(ctx context.Context) ([]domain.DebtHolder, error) {
	rows, err := r.db.Query(ctx, `SELECT `+holderColumns+` FROM debt_holders ORDER BY holder_type, holder_id;`)
	if err != nil {
		return nil, mapError(err, "failed to query debt holders")
	}
	defer rows.Close()

	holders := []domain.DebtHolder{}
	for rows.Next() {
		h, err := scanHolder(rows)
		if err != nil {
			return nil, mapError(err, "failed to scan debt holder row")
		}
		holders = append(holders, h)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "error iterating debt holder rows")
	}
	return holders, nil
}

// SaveDebtHolder inserts a holder with Version 0 or updates an existing one.
func (r *PgxDebtRepository) SaveDebtHolder(ctx context.Context, holder domain.DebtHolder) error {
	m := mapping.ToModelDebtHolder(holder)
	if m.Version == 0 {
		query := `
			INSERT INTO debt_holders (` + holderColumns + `)
			VALUES ($1, $2, $3, $4, $5, 1, $6, $7, $8, $9);
		`
		_, err := r.db.Exec(ctx, query,
			m.HolderType, m.HolderID, m.TotalBilled, m.TotalPaid, m.Outstanding,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		)
		return mapError(err, "failed to insert debt holder "+m.HolderType+" "+m.HolderID)
	}

	query := `
		UPDATE debt_holders
		SET total_billed = $3, total_paid = $4, outstanding = $5,
		    last_updated_at = $6, last_updated_by = $7, version = version + 1
		WHERE holder_type = $1 AND holder_id = $2 AND version = $8;
	`
	tag, err := r.db.Exec(ctx, query,
		m.HolderType, m.HolderID, m.TotalBilled, m.TotalPaid, m.Outstanding,
		m.LastUpdatedAt, m.LastUpdatedBy, m.Version,
	)
	if err != nil {
		return mapError(err, "failed to update debt holder "+m.HolderType+" "+m.HolderID)
	}
	if tag.RowsAffected() != 1 {
		return apperrors.Newf(apperrors.KindContention, "%s %s was modified concurrently", m.HolderType, m.HolderID)
	}
	return nil
}
