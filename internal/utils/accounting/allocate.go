package accounting

import (
	"fmt"
	"math"

	"github.com/SscSPs/treasury_ledger/internal/apperrors"
	"github.com/SscSPs/treasury_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AllocatePayment divides a payment across the split buckets in proportion to
// what each bucket has not yet received. Buckets that are already settled get
// nothing, no bucket ever receives more than its remainder, and a payment equal
// to the total remainder settles every bucket exactly.
func AllocatePayment(amount decimal.Decimal, remaining domain.SaleSplit, currency string) (domain.SaleSplit, error) {
	payment, err := toMoney(amount, currency)
	if err != nil {
		return domain.SaleSplit{}, err
	}
	if payment.Amount() <= 0 {
		return domain.SaleSplit{}, fmt.Errorf("%w: payment amount must be positive, got %s", apperrors.ErrValidation, amount.String())
	}

	buckets := make([]domain.SplitBucket, 0, len(domain.SplitBuckets))
	ratios := make([]int, 0, len(domain.SplitBuckets))
	var owed, largest int64
	for _, b := range domain.SplitBuckets {
		cents, err := ToCents(remaining.Share(b))
		if err != nil {
			return domain.SaleSplit{}, err
		}
		if cents < 0 {
			return domain.SaleSplit{}, fmt.Errorf("%w: bucket %s has negative remainder", apperrors.ErrSplitRoundingViolation, b)
		}
		if cents == 0 {
			continue
		}
		buckets = append(buckets, b)
		ratios = append(ratios, int(cents))
		owed += cents
		largest = max(largest, cents)
	}

	if payment.Amount() > owed {
		return domain.SaleSplit{}, fmt.Errorf("%w: payment %s exceeds unallocated %s", apperrors.ErrOverpaymentRejected, amount.String(), FromCents(owed).String())
	}
	if payment.Amount() == owed {
		return remaining, nil
	}
	if largest > math.MaxInt64/payment.Amount() {
		return domain.SaleSplit{}, fmt.Errorf("%w: payment %s is too large to allocate exactly", apperrors.ErrValidation, amount.String())
	}

	parts, err := payment.Allocate(ratios...)
	if err != nil {
		return domain.SaleSplit{}, fmt.Errorf("%w: %v", apperrors.ErrSplitRoundingViolation, err)
	}

	out := domain.SaleSplit{VaultShare: decimal.Zero, FreightShare: decimal.Zero, ProfitShare: decimal.Zero}
	var allocated int64
	for i, part := range parts {
		if part.Amount() > int64(ratios[i]) {
			return domain.SaleSplit{}, fmt.Errorf("%w: bucket %s over-allocated", apperrors.ErrSplitRoundingViolation, buckets[i])
		}
		out = out.Add(buckets[i], fromMoney(part))
		allocated += part.Amount()
	}
	if allocated != payment.Amount() {
		return domain.SaleSplit{}, fmt.Errorf("%w: allocated %d of %d cents", apperrors.ErrSplitRoundingViolation, allocated, payment.Amount())
	}
	return out, nil
}
