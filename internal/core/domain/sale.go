package domain

import (
	"fmt"

	"github.com/SscSPs/treasury_ledger/internal/apperrors"
	"github.com/shopspring/decimal"
)

// SplitBucket identifies one leg of a sale's revenue split.
type SplitBucket string

const (
	BucketVault   SplitBucket = "vault"
	BucketFreight SplitBucket = "freight"
	BucketProfit  SplitBucket = "profit"
)

// SplitBuckets lists the buckets in posting order.
var SplitBuckets = []SplitBucket{BucketVault, BucketFreight, BucketProfit}

// SaleSplit is the three-way division of a sale's total.
type SaleSplit struct {
	VaultShare   decimal.Decimal `json:"vaultShare"`   // cost of goods, back to the purchasing vault
	FreightShare decimal.Decimal `json:"freightShare"` // freight account
	ProfitShare  decimal.Decimal `json:"profitShare"`  // profit account
}

// Total is the sum of the three shares.
func (s SaleSplit) Total() decimal.Decimal {
	return s.VaultShare.Add(s.FreightShare).Add(s.ProfitShare)
}

// Share returns the amount for one bucket.
func (s SaleSplit) Share(b SplitBucket) decimal.Decimal {
	switch b {
	case BucketVault:
		return s.VaultShare
	case BucketFreight:
		return s.FreightShare
	case BucketProfit:
		return s.ProfitShare
	}
	return decimal.Zero
}

// Add returns s with amount added to bucket b.
func (s SaleSplit) Add(b SplitBucket, amount decimal.Decimal) SaleSplit {
	switch b {
	case BucketVault:
		s.VaultShare = s.VaultShare.Add(amount)
	case BucketFreight:
		s.FreightShare = s.FreightShare.Add(amount)
	case BucketProfit:
		s.ProfitShare = s.ProfitShare.Add(amount)
	}
	return s
}

// Sub returns the per-bucket difference s - other.
func (s SaleSplit) Sub(other SaleSplit) SaleSplit {
	return SaleSplit{
		VaultShare:   s.VaultShare.Sub(other.VaultShare),
		FreightShare: s.FreightShare.Sub(other.FreightShare),
		ProfitShare:  s.ProfitShare.Sub(other.ProfitShare),
	}
}

// Sale carries the monetary state of a sale. Identity and party data come from
// the business-entity layer; every field below is owned by the treasury.
type Sale struct {
	SaleID          string          `json:"saleID"`
	ClientID        string          `json:"clientID"`
	Quantity        int64           `json:"quantity"`
	UnitSalePrice   decimal.Decimal `json:"unitSalePrice"`
	UnitCostPrice   decimal.Decimal `json:"unitCostPrice"`
	FreightRate     decimal.Decimal `json:"freightRate"` // zero when freight is waived
	FreightWaived   bool            `json:"freightWaived"`
	TotalUnitPrice  decimal.Decimal `json:"totalUnitPrice"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	AmountPaid      decimal.Decimal `json:"amountPaid"`
	AmountRemaining decimal.Decimal `json:"amountRemaining"`
	Status          PaymentStatus   `json:"status"`
	Split           SaleSplit       `json:"split"`
	Recognized      SaleSplit       `json:"recognized"` // already credited to treasury accounts
	CurrencyCode    string          `json:"currencyCode"`
	Memo            string          `json:"memo"`
	Version         int64           `json:"version"`
	AuditFields
}

// Unrecognized is what each bucket still has to receive.
func (s *Sale) Unrecognized() SaleSplit {
	return s.Split.Sub(s.Recognized)
}

// ApplyPayment records a client payment against the sale.
func (s *Sale) ApplyPayment(amount decimal.Decimal) error {
	if s.Status.IsTerminal() {
		return fmt.Errorf("%w: sale %s is already %s", apperrors.ErrOverpaymentRejected, s.SaleID, s.Status)
	}
	paid, remaining, err := applyPayment("sale", s.SaleID, amount, s.AmountPaid, s.AmountRemaining)
	if err != nil {
		return err
	}
	status, err := advanceStatus(s.Status, derivePaymentStatus(paid, s.TotalAmount, StatusComplete))
	if err != nil {
		return err
	}
	s.AmountPaid, s.AmountRemaining, s.Status = paid, remaining, status
	return nil
}

// RefreshStatus derives the status from the paid amount (used at creation).
func (s *Sale) RefreshStatus() {
	s.Status = derivePaymentStatus(s.AmountPaid, s.TotalAmount, StatusComplete)
}

// CheckInvariants verifies the debt and split identities.
func (s *Sale) CheckInvariants() error {
	if !s.AmountPaid.Add(s.AmountRemaining).Equal(s.TotalAmount) {
		return fmt.Errorf("%w: sale %s paid %s + remaining %s != total %s", apperrors.ErrInternal, s.SaleID, s.AmountPaid, s.AmountRemaining, s.TotalAmount)
	}
	if !s.Split.Total().Equal(s.TotalAmount) {
		return fmt.Errorf("%w: sale %s split %s != total %s", apperrors.ErrSplitRoundingViolation, s.SaleID, s.Split.Total(), s.TotalAmount)
	}
	if s.AmountRemaining.IsNegative() {
		return fmt.Errorf("%w: sale %s has negative remaining balance", apperrors.ErrOverpaymentRejected, s.SaleID)
	}
	return nil
}
