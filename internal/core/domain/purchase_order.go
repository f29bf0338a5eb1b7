package domain

import (
	"fmt"

	"github.com/SscSPs/treasury_ledger/internal/apperrors"
	"github.com/shopspring/decimal"
)

// PurchaseOrder carries the monetary state of an order placed with a distributor.
type PurchaseOrder struct {
	OrderID             string          `json:"orderID"`
	DistributorID       string          `json:"distributorID"`
	Quantity            int64           `json:"quantity"`
	DistributorUnitCost decimal.Decimal `json:"distributorUnitCost"`
	TransportUnitCost   decimal.Decimal `json:"transportUnitCost"`
	UnitCost            decimal.Decimal `json:"unitCost"`
	TotalCost           decimal.Decimal `json:"totalCost"`
	AmountPaid          decimal.Decimal `json:"amountPaid"`
	Debt                decimal.Decimal `json:"debt"`
	Status              PaymentStatus   `json:"status"`
	SourceAccountKey    *string         `json:"sourceAccountKey,omitempty"` // account the initial payment came from
	CurrencyCode        string          `json:"currencyCode"`
	Memo                string          `json:"memo"`
	Version             int64           `json:"version"`
	AuditFields
}

// ApplyPayment records a payment to the distributor against this order.
func (o *PurchaseOrder) ApplyPayment(amount decimal.Decimal) error {
	if o.Status.IsTerminal() {
		return fmt.Errorf("%w: purchase order %s is already %s", apperrors.ErrOverpaymentRejected, o.OrderID, o.Status)
	}
	paid, debt, err := applyPayment("purchase order", o.OrderID, amount, o.AmountPaid, o.Debt)
	if err != nil {
		return err
	}
	status, err := advanceStatus(o.Status, derivePaymentStatus(paid, o.TotalCost, StatusPaid))
	if err != nil {
		return err
	}
	o.AmountPaid, o.Debt, o.Status = paid, debt, status
	return nil
}

// RefreshStatus derives the status from the paid amount (used at creation).
func (o *PurchaseOrder) RefreshStatus() {
	o.Status = derivePaymentStatus(o.AmountPaid, o.TotalCost, StatusPaid)
}

// CheckInvariants verifies amountPaid + debt == totalCost.
func (o *PurchaseOrder) CheckInvariants() error {
	if !o.AmountPaid.Add(o.Debt).Equal(o.TotalCost) {
		return fmt.Errorf("%w: purchase order %s paid %s + debt %s != total %s", apperrors.ErrInternal, o.OrderID, o.AmountPaid, o.Debt, o.TotalCost)
	}
	if o.Debt.IsNegative() {
		return fmt.Errorf("%w: purchase order %s has negative debt", apperrors.ErrOverpaymentRejected, o.OrderID)
	}
	return nil
}
