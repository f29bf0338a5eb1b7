package domain

import (
	"fmt"

	"github.com/SscSPs/treasury_ledger/internal/apperrors"
	"github.com/shopspring/decimal"
)

// CentPlaces is the number of decimal places allowed in any stored amount.
const CentPlaces = 2

// IsWholeCents reports whether d has no sub-cent fraction.
func IsWholeCents(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(CentPlaces))
}

// ValidatePositiveAmount checks that amount is strictly positive and expressed in whole cents.
func ValidatePositiveAmount(field string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: %s must be positive, got %s", apperrors.ErrValidation, field, amount.String())
	}
	if !IsWholeCents(amount) {
		return fmt.Errorf("%w: %s has more than %d decimal places", apperrors.ErrValidation, field, CentPlaces)
	}
	return nil
}

// ValidateNonNegativeAmount checks that amount is zero or positive and expressed in whole cents.
func ValidateNonNegativeAmount(field string, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: %s must not be negative, got %s", apperrors.ErrValidation, field, amount.String())
	}
	if !IsWholeCents(amount) {
		return fmt.Errorf("%w: %s has more than %d decimal places", apperrors.ErrValidation, field, CentPlaces)
	}
	return nil
}
