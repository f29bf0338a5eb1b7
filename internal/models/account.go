package models

import "github.com/shopspring/decimal"

// Account is a row of the accounts table.
type Account struct {
	AccountKey        string          `db:"account_key"`
	Name              string          `db:"name"`
	Category          string          `db:"category"`
	CurrencyCode      string          `db:"currency_code"`
	InitialBalance    decimal.Decimal `db:"initial_balance"`
	CurrentBalance    decimal.Decimal `db:"current_balance"`
	CumulativeInflow  decimal.Decimal `db:"cumulative_inflow"`
	CumulativeOutflow decimal.Decimal `db:"cumulative_outflow"`
	OpeningInflow     decimal.Decimal `db:"opening_inflow"`
	OpeningOutflow    decimal.Decimal `db:"opening_outflow"`
	IsActive          bool            `db:"is_active"`
	AllowOverdraft    bool            `db:"allow_overdraft"`
	AppliedSeq        int64           `db:"applied_seq"`
	Version           int64           `db:"version"`
	AuditFields
}
