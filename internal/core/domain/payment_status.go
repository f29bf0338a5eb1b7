package domain

import (
	"fmt"

	"github.com/SscSPs/treasury_ledger/internal/apperrors"
	"github.com/shopspring/decimal"
)

// PaymentStatus is the settlement state of a sale or purchase order.
// Sales settle as "complete", purchase orders as "paid".
type PaymentStatus string

const (
	StatusPending  PaymentStatus = "pending"
	StatusPartial  PaymentStatus = "partial"
	StatusComplete PaymentStatus = "complete"
	StatusPaid     PaymentStatus = "paid"
)

func (s PaymentStatus) rank() int {
	switch s {
	case StatusPending:
		return 0
	case StatusPartial:
		return 1
	case StatusComplete, StatusPaid:
		return 2
	}
	return -1
}

// IsTerminal reports whether no further payment can be applied.
func (s PaymentStatus) IsTerminal() bool { return s.rank() == 2 }

// derivePaymentStatus maps paid/total onto pending, partial or the settled status.
func derivePaymentStatus(paid, total decimal.Decimal, settled PaymentStatus) PaymentStatus {
	switch {
	case paid.IsZero():
		return StatusPending
	case paid.GreaterThanOrEqual(total):
		return settled
	default:
		return StatusPartial
	}
}

// advanceStatus moves current to next, refusing any regression.
func advanceStatus(current, next PaymentStatus) (PaymentStatus, error) {
	if current != "" && next.rank() < current.rank() {
		return current, fmt.Errorf("%w: status cannot move from %s back to %s", apperrors.ErrInternal, current, next)
	}
	return next, nil
}

// applyPayment is the shared settlement rule for sales and purchase orders:
// the payment must fit in what is still owed.
func applyPayment(entity string, id string, amount, paid, owed decimal.Decimal) (decimal.Decimal, decimal.Decimal, error) {
	if err := ValidatePositiveAmount("payment amount", amount); err != nil {
		return paid, owed, err
	}
	if amount.GreaterThan(owed) {
		return paid, owed, fmt.Errorf("%w: %s %s owes %s, payment of %s rejected", apperrors.ErrOverpaymentRejected, entity, id, owed.String(), amount.String())
	}
	return paid.Add(amount), owed.Sub(amount), nil
}
