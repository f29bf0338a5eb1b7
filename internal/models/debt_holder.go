package models

import "github.com/shopspring/decimal"

// DebtHolder is a row of the debt_holders table.
type DebtHolder struct {
	HolderType  string          `db:"holder_type"`
	HolderID    string          `db:"holder_id"`
	TotalBilled decimal.Decimal `db:"total_billed"`
	TotalPaid   decimal.Decimal `db:"total_paid"`
	Outstanding decimal.Decimal `db:"outstanding"`
	Version     int64           `db:"version"`
	AuditFields
}
