package models

import "github.com/shopspring/decimal"

// PurchaseOrder is a row of the purchase_orders table.
type PurchaseOrder struct {
	OrderID             string          `db:"order_id"`
	DistributorID       string          `db:"distributor_id"`
	Quantity            int64           `db:"quantity"`
	DistributorUnitCost decimal.Decimal `db:"distributor_unit_cost"`
	TransportUnitCost   decimal.Decimal `db:"transport_unit_cost"`
	UnitCost            decimal.Decimal `db:"unit_cost"`
	TotalCost           decimal.Decimal `db:"total_cost"`
	AmountPaid          decimal.Decimal `db:"amount_paid"`
	Debt                decimal.Decimal `db:"debt"`
	Status              string          `db:"status"`
	SourceAccountKey    *string         `db:"source_account_key"` // Nullable
	CurrencyCode        string          `db:"currency_code"`
	Memo                string          `db:"memo"`
	Version             int64           `db:"version"`
	AuditFields
}
