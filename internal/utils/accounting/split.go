package accounting

import (
	"fmt"

	"github.com/SscSPs/treasury_ledger/internal/apperrors"
	"github.com/SscSPs/treasury_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SaleInput holds the static attributes needed to price a sale.
type SaleInput struct {
	Quantity      int64
	UnitSalePrice decimal.Decimal
	UnitCostPrice decimal.Decimal
	FreightRate   decimal.Decimal
	FreightWaived bool
}

// SaleBreakdown is the priced sale: totals plus the three-way split.
type SaleBreakdown struct {
	FreightRate    decimal.Decimal // effective rate, zero when waived
	TotalUnitPrice decimal.Decimal
	TotalAmount    decimal.Decimal
	Split          domain.SaleSplit
}

// PurchaseInput holds the static attributes needed to cost a purchase order.
type PurchaseInput struct {
	Quantity            int64
	DistributorUnitCost decimal.Decimal
	TransportUnitCost   decimal.Decimal
}

// PurchaseBreakdown is the costed purchase order.
type PurchaseBreakdown struct {
	UnitCost  decimal.Decimal
	TotalCost decimal.Decimal
}

func validateQuantity(q int64) error {
	if q <= 0 {
		return fmt.Errorf("%w: quantity must be greater than zero, got %d", apperrors.ErrValidation, q)
	}
	return nil
}

func validatePrice(field string, v decimal.Decimal) error {
	if v.IsNegative() {
		return fmt.Errorf("%w: %s must not be negative, got %s", apperrors.ErrValidation, field, v.String())
	}
	return nil
}

// SplitSale prices a sale and divides its total across the vault, freight and
// profit buckets. All buckets are computed in whole cents; an input that would
// need sub-cent rounding is rejected rather than rounded.
//
//	totalUnit = p + f
//	total     = totalUnit * q
//	vault     = c * q
//	freight   = f * q
//	profit    = total - vault - freight
func SplitSale(in SaleInput) (SaleBreakdown, error) {
	if err := validateQuantity(in.Quantity); err != nil {
		return SaleBreakdown{}, err
	}
	freightRate := in.FreightRate
	if in.FreightWaived {
		freightRate = decimal.Zero
	}
	if err := validatePrice("unit sale price", in.UnitSalePrice); err != nil {
		return SaleBreakdown{}, err
	}
	if err := validatePrice("unit cost price", in.UnitCostPrice); err != nil {
		return SaleBreakdown{}, err
	}
	if err := validatePrice("freight rate", freightRate); err != nil {
		return SaleBreakdown{}, err
	}

	q := decimal.NewFromInt(in.Quantity)
	totalUnit := in.UnitSalePrice.Add(freightRate)

	totalCents, err := ToCents(totalUnit.Mul(q))
	if err != nil {
		return SaleBreakdown{}, err
	}
	if totalCents == 0 {
		return SaleBreakdown{}, fmt.Errorf("%w: sale total must be greater than zero", apperrors.ErrValidation)
	}
	vaultCents, err := ToCents(in.UnitCostPrice.Mul(q))
	if err != nil {
		return SaleBreakdown{}, err
	}
	freightCents, err := ToCents(freightRate.Mul(q))
	if err != nil {
		return SaleBreakdown{}, err
	}

	profitCents := totalCents - vaultCents - freightCents
	if profitCents < 0 {
		return SaleBreakdown{}, fmt.Errorf("%w: sale price %s is below unit cost %s", apperrors.ErrValidation, in.UnitSalePrice.String(), in.UnitCostPrice.String())
	}

	split := domain.SaleSplit{
		VaultShare:   FromCents(vaultCents),
		FreightShare: FromCents(freightCents),
		ProfitShare:  FromCents(profitCents),
	}
	total := FromCents(totalCents)
	if !split.Total().Equal(total) {
		return SaleBreakdown{}, fmt.Errorf("%w: buckets sum to %s, total is %s", apperrors.ErrSplitRoundingViolation, split.Total().String(), total.String())
	}

	return SaleBreakdown{
		FreightRate:    freightRate,
		TotalUnitPrice: totalUnit,
		TotalAmount:    total,
		Split:          split,
	}, nil
}

// CostPurchase computes a purchase order's unit and total cost.
func CostPurchase(in PurchaseInput) (PurchaseBreakdown, error) {
	if err := validateQuantity(in.Quantity); err != nil {
		return PurchaseBreakdown{}, err
	}
	if err := validatePrice("distributor unit cost", in.DistributorUnitCost); err != nil {
		return PurchaseBreakdown{}, err
	}
	if err := validatePrice("transport unit cost", in.TransportUnitCost); err != nil {
		return PurchaseBreakdown{}, err
	}

	unitCost := in.DistributorUnitCost.Add(in.TransportUnitCost)
	totalCents, err := ToCents(unitCost.Mul(decimal.NewFromInt(in.Quantity)))
	if err != nil {
		return PurchaseBreakdown{}, err
	}
	return PurchaseBreakdown{UnitCost: unitCost, TotalCost: FromCents(totalCents)}, nil
}
