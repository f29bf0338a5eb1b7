package accounting_test

import (
	"testing"

	"github.com/SscSPs/treasury_ledger/internal/apperrors"
	"github.com/SscSPs/treasury_ledger/internal/core/domain"
	"github.com/SscSPs/treasury_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func split(vault, freight, profit string) domain.SaleSplit {
	return domain.SaleSplit{VaultShare: d(vault), FreightShare: d(freight), ProfitShare: d(profit)}
}

func TestSplitSale(t *testing.T) {
	tests := []struct {
		name      string
		in        accounting.SaleInput
		wantTotal string
		wantSplit domain.SaleSplit
		wantErr   error
	}{
		{
			name:      "reference fixture",
			in:        accounting.SaleInput{Quantity: 100, UnitSalePrice: d("6300"), UnitCostPrice: d("6300"), FreightRate: d("500")},
			wantTotal: "680000",
			wantSplit: split("630000", "50000", "0"),
		},
		{
			name:      "profit bucket",
			in:        accounting.SaleInput{Quantity: 10, UnitSalePrice: d("7000"), UnitCostPrice: d("6300"), FreightRate: d("500")},
			wantTotal: "75000",
			wantSplit: split("63000", "5000", "7000"),
		},
		{
			name:      "freight waived",
			in:        accounting.SaleInput{Quantity: 3, UnitSalePrice: d("99.99"), UnitCostPrice: d("50.10"), FreightRate: d("500"), FreightWaived: true},
			wantTotal: "299.97",
			wantSplit: split("150.30", "0", "149.67"),
		},
		{
			name:      "fractional prices that land on whole cents",
			in:        accounting.SaleInput{Quantity: 8, UnitSalePrice: d("0.125"), UnitCostPrice: d("0.125"), FreightRate: decimal.Zero},
			wantTotal: "1",
			wantSplit: split("1", "0", "0"),
		},
		{
			name:    "sub-cent total",
			in:      accounting.SaleInput{Quantity: 3, UnitSalePrice: d("0.333"), UnitCostPrice: d("0.1"), FreightRate: decimal.Zero},
			wantErr: apperrors.ErrSplitRoundingViolation,
		},
		{
			name:    "zero quantity",
			in:      accounting.SaleInput{Quantity: 0, UnitSalePrice: d("1"), UnitCostPrice: d("1")},
			wantErr: apperrors.ErrValidation,
		},
		{
			name:    "negative quantity",
			in:      accounting.SaleInput{Quantity: -5, UnitSalePrice: d("1"), UnitCostPrice: d("1")},
			wantErr: apperrors.ErrValidation,
		},
		{
			name:    "negative cost",
			in:      accounting.SaleInput{Quantity: 1, UnitSalePrice: d("1"), UnitCostPrice: d("-1")},
			wantErr: apperrors.ErrValidation,
		},
		{
			name:    "zero total",
			in:      accounting.SaleInput{Quantity: 5, UnitSalePrice: decimal.Zero, UnitCostPrice: decimal.Zero, FreightRate: d("500"), FreightWaived: true},
			wantErr: apperrors.ErrValidation,
		},
		{
			name:    "sale below cost",
			in:      accounting.SaleInput{Quantity: 1, UnitSalePrice: d("10"), UnitCostPrice: d("11"), FreightRate: d("5")},
			wantErr: apperrors.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := accounting.SplitSale(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.TotalAmount.Equal(d(tt.wantTotal)), "total %s", got.TotalAmount)
			assert.True(t, got.Split.VaultShare.Equal(tt.wantSplit.VaultShare), "vault %s", got.Split.VaultShare)
			assert.True(t, got.Split.FreightShare.Equal(tt.wantSplit.FreightShare), "freight %s", got.Split.FreightShare)
			assert.True(t, got.Split.ProfitShare.Equal(tt.wantSplit.ProfitShare), "profit %s", got.Split.ProfitShare)
			assert.True(t, got.Split.Total().Equal(got.TotalAmount))
		})
	}
}

func TestSplitSale_TotalsAlwaysExact(t *testing.T) {
	for q := int64(1); q <= 50; q++ {
		for _, price := range []string{"0.01", "19.99", "6300", "1234.56"} {
			got, err := accounting.SplitSale(accounting.SaleInput{
				Quantity:      q,
				UnitSalePrice: d(price),
				UnitCostPrice: d(price).Div(d("2")).Truncate(2),
				FreightRate:   d("0.07"),
			})
			require.NoError(t, err)
			assert.True(t, got.Split.Total().Equal(got.TotalAmount), "q=%d price=%s", q, price)
		}
	}
}

func TestCostPurchase(t *testing.T) {
	got, err := accounting.CostPurchase(accounting.PurchaseInput{Quantity: 100, DistributorUnitCost: d("6300"), TransportUnitCost: d("500")})
	require.NoError(t, err)
	assert.True(t, got.UnitCost.Equal(d("6800")))
	assert.True(t, got.TotalCost.Equal(d("680000")))

	_, err = accounting.CostPurchase(accounting.PurchaseInput{Quantity: 0, DistributorUnitCost: d("1")})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = accounting.CostPurchase(accounting.PurchaseInput{Quantity: 1, DistributorUnitCost: d("1"), TransportUnitCost: d("-0.5")})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
