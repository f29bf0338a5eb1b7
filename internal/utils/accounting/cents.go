package accounting

import (
	"fmt"
	"math"

	"github.com/Rhymond/go-money"
	"github.com/SscSPs/treasury_ledger/internal/apperrors"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when a caller does not tag an amount.
const DefaultCurrency = "MXN"

var maxCents = decimal.NewFromInt(math.MaxInt64)

// ToCents converts an amount into integer cents. Amounts with a sub-cent
// fraction cannot be represented and are reported as a rounding violation.
func ToCents(amount decimal.Decimal) (int64, error) {
	cents := amount.Shift(2)
	if !cents.Equal(cents.Truncate(0)) {
		return 0, fmt.Errorf("%w: %s is not a whole number of cents", apperrors.ErrSplitRoundingViolation, amount.String())
	}
	if cents.Abs().GreaterThan(maxCents) {
		return 0, fmt.Errorf("%w: %s is out of range", apperrors.ErrValidation, amount.String())
	}
	return cents.IntPart(), nil
}

// FromCents converts integer cents back into a decimal amount.
func FromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

// toMoney builds a go-money value for cent-exact arithmetic.
func toMoney(amount decimal.Decimal, currency string) (*money.Money, error) {
	cents, err := ToCents(amount)
	if err != nil {
		return nil, err
	}
	if currency == "" {
		currency = DefaultCurrency
	}
	return money.New(cents, currency), nil
}

func fromMoney(m *money.Money) decimal.Decimal {
	return FromCents(m.Amount())
}
