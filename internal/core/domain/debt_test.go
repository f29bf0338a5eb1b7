package domain_test

import (
	"testing"

	"github.com/SscSPs/treasury_ledger/internal/apperrors"
	"github.com/SscSPs/treasury_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrder(total, paid string) domain.PurchaseOrder {
	o := domain.PurchaseOrder{
		OrderID:    "po-1",
		TotalCost:  d(total),
		AmountPaid: d(paid),
		Debt:       d(total).Sub(d(paid)),
	}
	o.RefreshStatus()
	return o
}

func TestPurchaseOrder_PaymentStatusIsMonotonic(t *testing.T) {
	o := newOrder("680000", "400000")
	require.Equal(t, domain.StatusPartial, o.Status)
	require.True(t, o.Debt.Equal(d("280000")))

	require.NoError(t, o.ApplyPayment(d("80000")))
	assert.Equal(t, domain.StatusPartial, o.Status)
	assert.NoError(t, o.CheckInvariants())

	require.NoError(t, o.ApplyPayment(d("200000")))
	assert.Equal(t, domain.StatusPaid, o.Status)
	assert.True(t, o.Debt.IsZero())

	err := o.ApplyPayment(d("0.01"))
	assert.ErrorIs(t, err, apperrors.ErrOverpaymentRejected)
	assert.Equal(t, domain.StatusPaid, o.Status)
}

func TestPurchaseOrder_OverpaymentLeavesOrderUntouched(t *testing.T) {
	o := newOrder("1000", "0")
	require.Equal(t, domain.StatusPending, o.Status)

	err := o.ApplyPayment(d("1000.01"))

	assert.ErrorIs(t, err, apperrors.ErrOverpaymentRejected)
	assert.True(t, o.AmountPaid.IsZero())
	assert.Equal(t, domain.StatusPending, o.Status)
}

func TestSale_ApplyPayment(t *testing.T) {
	s := domain.Sale{
		SaleID:          "s-1",
		TotalAmount:     d("680000"),
		AmountPaid:      decimal.Zero,
		AmountRemaining: d("680000"),
		Split:           domain.SaleSplit{VaultShare: d("630000"), FreightShare: d("50000"), ProfitShare: decimal.Zero},
	}
	s.RefreshStatus()
	require.Equal(t, domain.StatusPending, s.Status)

	require.NoError(t, s.ApplyPayment(d("680000")))
	assert.Equal(t, domain.StatusComplete, s.Status)
	assert.NoError(t, s.CheckInvariants())

	assert.ErrorIs(t, s.ApplyPayment(d("1")), apperrors.ErrOverpaymentRejected)
}

func TestSale_CheckInvariantsFlagsSplitDrift(t *testing.T) {
	s := domain.Sale{
		SaleID:          "s-2",
		TotalAmount:     d("100"),
		AmountRemaining: d("100"),
		AmountPaid:      decimal.Zero,
		Split:           domain.SaleSplit{VaultShare: d("60"), FreightShare: d("30"), ProfitShare: d("9.99")},
	}

	assert.ErrorIs(t, s.CheckInvariants(), apperrors.ErrSplitRoundingViolation)
}

func TestDebtHolder_ChargesAndPayments(t *testing.T) {
	h := domain.NewDebtHolder(domain.HolderDistributor, "dist-1")
	ref := domain.EntityRef{Type: domain.EntityPurchaseOrder, ID: "po-1"}

	require.NoError(t, h.RegisterCharge(ref, d("680000")))
	require.NoError(t, h.RegisterPayment(ref, d("400000")))

	assert.True(t, h.Outstanding.Equal(d("280000")))
	assert.True(t, h.TotalBilled.Equal(d("680000")))
	assert.True(t, h.TotalPaid.Equal(d("400000")))

	assert.ErrorIs(t, h.RegisterPayment(ref, d("280000.01")), apperrors.ErrOverpaymentRejected)
	assert.ErrorIs(t, h.RegisterCharge(ref, d("-1")), apperrors.ErrValidation)
}

func TestDebtHolder_RecomputeFrom(t *testing.T) {
	h := domain.NewDebtHolder(domain.HolderClient, "c-1")

	h.RecomputeFrom([]decimal.Decimal{d("100"), d("50")}, []decimal.Decimal{d("100"), d("20")})

	assert.True(t, h.Outstanding.Equal(d("30")))
	assert.True(t, h.TotalBilled.Equal(d("150")))
}
