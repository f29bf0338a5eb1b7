package dto

import (
	"github.com/shopspring/decimal"
)

// RecordSaleRequest defines the data needed to record a sale.
type RecordSaleRequest struct {
	SaleID        string           `json:"saleID" validate:"omitempty,max=64"` // generated when empty
	ClientID      string           `json:"clientID" binding:"required" validate:"required,max=64"`
	Quantity      int64            `json:"quantity" validate:"gt=0"`
	UnitSalePrice decimal.Decimal  `json:"unitSalePrice" validate:"gte=0"`
	UnitCostPrice decimal.Decimal  `json:"unitCostPrice" validate:"gte=0"`
	FreightRate   *decimal.Decimal `json:"freightRate" validate:"omitempty,gte=0"` // configured default when nil
	FreightWaived bool             `json:"freightWaived"`
	AmountPaid    decimal.Decimal  `json:"amountPaid" validate:"gte=0"`
	CurrencyCode  string           `json:"currencyCode" validate:"omitempty,len=3"`
	Memo          string           `json:"memo" validate:"max=500"`

	IdempotencyKey string `json:"-"`
}

// RecordPurchaseOrderRequest defines the data needed to record a purchase order.
type RecordPurchaseOrderRequest struct {
	OrderID             string           `json:"orderID" validate:"omitempty,max=64"`
	DistributorID       string           `json:"distributorID" binding:"required" validate:"required,max=64"`
	Quantity            int64            `json:"quantity" validate:"gt=0"`
	DistributorUnitCost decimal.Decimal  `json:"distributorUnitCost" validate:"gte=0"`
	TransportUnitCost   decimal.Decimal  `json:"transportUnitCost" validate:"gte=0"`
	InitialPayment      decimal.Decimal  `json:"initialPayment" validate:"gte=0"`
	SourceAccountKey    *string          `json:"sourceAccountKey" validate:"omitempty,min=1"`
	ExpectedDebt        *decimal.Decimal `json:"expectedDebt" validate:"omitempty,gte=0"` // must equal totalCost - initialPayment when given
	CurrencyCode        string           `json:"currencyCode" validate:"omitempty,len=3"`
	Memo                string           `json:"memo" validate:"max=500"`

	IdempotencyKey string `json:"-"`
}

// RecordPaymentRequest defines a payment against a sale or purchase order.
type RecordPaymentRequest struct {
	EntityType       string          `json:"entityType" binding:"required" validate:"required,oneof=sale purchase_order"`
	EntityID         string          `json:"entityID" binding:"required" validate:"required"`
	Amount           decimal.Decimal `json:"amount" validate:"gt=0"`
	SourceAccountKey *string         `json:"sourceAccountKey" validate:"omitempty,min=1"`
	Memo             string          `json:"memo" validate:"max=500"`

	IdempotencyKey string `json:"-"`
}

// RecordMovementRequest defines a manual income or expense.
type RecordMovementRequest struct {
	AccountKey string          `json:"accountKey" binding:"required" validate:"required"`
	Kind       string          `json:"kind" binding:"required" validate:"required,oneof=income expense"`
	Amount     decimal.Decimal `json:"amount" validate:"gt=0"`
	Memo       string          `json:"memo" validate:"max=500"`

	IdempotencyKey string `json:"-"`
}

// RecordTransferRequest defines a transfer between two accounts.
type RecordTransferRequest struct {
	FromAccountKey string          `json:"fromAccountKey" binding:"required" validate:"required"`
	ToAccountKey   string          `json:"toAccountKey" binding:"required" validate:"required"`
	Amount         decimal.Decimal `json:"amount" validate:"gt=0"`
	Memo           string          `json:"memo" validate:"max=500"`

	IdempotencyKey string `json:"-"`
}
