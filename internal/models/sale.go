package models

import "github.com/shopspring/decimal"

// Sale is a row of the sales table. The split and its recognized portion are
// stored as one column per bucket.
type Sale struct {
	SaleID            string          `db:"sale_id"`
	ClientID          string          `db:"client_id"`
	Quantity          int64           `db:"quantity"`
	UnitSalePrice     decimal.Decimal `db:"unit_sale_price"`
	UnitCostPrice     decimal.Decimal `db:"unit_cost_price"`
	FreightRate       decimal.Decimal `db:"freight_rate"`
	FreightWaived     bool            `db:"freight_waived"`
	TotalUnitPrice    decimal.Decimal `db:"total_unit_price"`
	TotalAmount       decimal.Decimal `db:"total_amount"`
	AmountPaid        decimal.Decimal `db:"amount_paid"`
	AmountRemaining   decimal.Decimal `db:"amount_remaining"`
	Status            string          `db:"status"`
	VaultShare        decimal.Decimal `db:"vault_share"`
	FreightShare      decimal.Decimal `db:"freight_share"`
	ProfitShare       decimal.Decimal `db:"profit_share"`
	RecognizedVault   decimal.Decimal `db:"recognized_vault"`
	RecognizedFreight decimal.Decimal `db:"recognized_freight"`
	RecognizedProfit  decimal.Decimal `db:"recognized_profit"`
	CurrencyCode      string          `db:"currency_code"`
	Memo              string          `db:"memo"`
	Version           int64           `db:"version"`
	AuditFields
}
