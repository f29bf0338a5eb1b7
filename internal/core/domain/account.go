package domain

import (
	"fmt"

	"github.com/SscSPs/treasury_ledger/internal/apperrors"
	"github.com/shopspring/decimal"
)

// AccountCategory groups treasury accounts by their role.
type AccountCategory string

const (
	CategoryVault       AccountCategory = "vault"
	CategoryOperational AccountCategory = "operational"
	CategoryExpense     AccountCategory = "expense"
	CategoryProfit      AccountCategory = "profit"
)

// Valid reports whether c is one of the known categories.
func (c AccountCategory) Valid() bool {
	switch c {
	case CategoryVault, CategoryOperational, CategoryExpense, CategoryProfit:
		return true
	}
	return false
}

// Account is a named monetary bucket. Balances are a projection of the ledger:
// AppliedSeq is the highest ledger sequence folded into the figures below.
type Account struct {
	Key               string          `json:"key"`
	Name              string          `json:"name"`
	Category          AccountCategory `json:"category"`
	CurrencyCode      string          `json:"currencyCode"`
	InitialBalance    decimal.Decimal `json:"initialBalance"`
	CurrentBalance    decimal.Decimal `json:"currentBalance"`
	CumulativeInflow  decimal.Decimal `json:"cumulativeInflow"`
	CumulativeOutflow decimal.Decimal `json:"cumulativeOutflow"`
	OpeningInflow     decimal.Decimal `json:"openingInflow"`  // historical inflow carried in from the catalog
	OpeningOutflow    decimal.Decimal `json:"openingOutflow"` // historical outflow carried in from the catalog
	IsActive          bool            `json:"isActive"`
	AllowOverdraft    bool            `json:"allowOverdraft"`
	AppliedSeq        int64           `json:"appliedSeq"`
	Version           int64           `json:"version"`
	AuditFields
}

// CanGoNegative reports whether the account may carry a negative balance.
// Only vaults can be configured for overdraft.
func (a *Account) CanGoNegative() bool {
	return a.Category == CategoryVault && a.AllowOverdraft
}

// Conserved reports whether current == initial + inflow - outflow.
func (a *Account) Conserved() bool {
	return a.CurrentBalance.Equal(a.InitialBalance.Add(a.CumulativeInflow).Sub(a.CumulativeOutflow))
}

// ApplyDelta folds one ledger movement into the balance and cumulative counters.
// The receiver is mutated only when the movement is accepted.
func (a *Account) ApplyDelta(kind EntryKind, amount decimal.Decimal) error {
	if !a.IsActive {
		return fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, a.Key)
	}
	if err := ValidatePositiveAmount("amount", amount); err != nil {
		return err
	}

	switch {
	case kind.IsCredit():
		a.CurrentBalance = a.CurrentBalance.Add(amount)
		a.CumulativeInflow = a.CumulativeInflow.Add(amount)
	case kind.IsDebit():
		next := a.CurrentBalance.Sub(amount)
		if next.IsNegative() && !a.CanGoNegative() {
			return fmt.Errorf("%w: account %s balance %s cannot absorb %s", apperrors.ErrInsufficientFunds, a.Key, a.CurrentBalance.String(), amount.String())
		}
		a.CurrentBalance = next
		a.CumulativeOutflow = a.CumulativeOutflow.Add(amount)
	default:
		return fmt.Errorf("%w: unknown entry kind %q", apperrors.ErrValidation, kind)
	}
	return nil
}

// ResetProjection returns the account to its freshly bootstrapped state:
// initial balance plus the opening historical counters, no ledger applied.
func (a *Account) ResetProjection() {
	a.CumulativeInflow = a.OpeningInflow
	a.CumulativeOutflow = a.OpeningOutflow
	a.CurrentBalance = a.InitialBalance.Add(a.OpeningInflow).Sub(a.OpeningOutflow)
	a.AppliedSeq = 0
}

// SameFigures reports whether two projections of the same account agree.
func (a *Account) SameFigures(other Account) bool {
	return a.CurrentBalance.Equal(other.CurrentBalance) &&
		a.CumulativeInflow.Equal(other.CumulativeInflow) &&
		a.CumulativeOutflow.Equal(other.CumulativeOutflow)
}

// Replay folds an entry that the ledger already accepted. Sufficiency and
// activity are not re-checked.
func (a *Account) Replay(e LedgerEntry) {
	switch {
	case e.Kind.IsCredit():
		a.CurrentBalance = a.CurrentBalance.Add(e.Amount)
		a.CumulativeInflow = a.CumulativeInflow.Add(e.Amount)
	case e.Kind.IsDebit():
		a.CurrentBalance = a.CurrentBalance.Sub(e.Amount)
		a.CumulativeOutflow = a.CumulativeOutflow.Add(e.Amount)
	}
	if e.Seq > a.AppliedSeq {
		a.AppliedSeq = e.Seq
	}
}
