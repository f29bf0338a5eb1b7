package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is a row of the append-only ledger_entries table.
type LedgerEntry struct {
	Seq               int64           `db:"seq"`
	EntryID           string          `db:"entry_id"`
	AccountKey        string          `db:"account_key"`
	Kind              string          `db:"kind"`
	Amount            decimal.Decimal `db:"amount"`
	CurrencyCode      string          `db:"currency_code"`
	Memo              string          `db:"memo"`
	CounterAccountKey *string         `db:"counter_account_key"` // Nullable
	EntityType        *string         `db:"entity_type"`         // Nullable
	EntityID          *string         `db:"entity_id"`           // Nullable
	CorrelationID     string          `db:"correlation_id"`
	ReversesEntryID   *string         `db:"reverses_entry_id"` // Nullable
	BalanceAfter      decimal.Decimal `db:"balance_after"`
	CreatedAt         time.Time       `db:"created_at"`
	CreatedBy         string          `db:"created_by"`
}
