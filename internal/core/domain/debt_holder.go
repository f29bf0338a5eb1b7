package domain

import (
	"fmt"

	"github.com/SscSPs/treasury_ledger/internal/apperrors"
	"github.com/shopspring/decimal"
)

// HolderType distinguishes who owes whom.
type HolderType string

const (
	HolderClient      HolderType = "client"      // owes us for sales
	HolderDistributor HolderType = "distributor" // we owe for purchase orders
)

// Valid reports whether t is a known holder type.
func (t HolderType) Valid() bool {
	return t == HolderClient || t == HolderDistributor
}

// HolderFor returns the holder type that carries the debt of an entity type.
func HolderFor(entity EntityType) (HolderType, bool) {
	switch entity {
	case EntitySale:
		return HolderClient, true
	case EntityPurchaseOrder:
		return HolderDistributor, true
	}
	return "", false
}

// DebtHolder aggregates billed, paid and outstanding amounts across a party's entities.
// It is updated incrementally; RecomputeFrom exists for reconciliation only.
type DebtHolder struct {
	HolderType  HolderType      `json:"holderType"`
	HolderID    string          `json:"holderID"`
	TotalBilled decimal.Decimal `json:"totalBilled"`
	TotalPaid   decimal.Decimal `json:"totalPaid"`
	Outstanding decimal.Decimal `json:"outstanding"`
	Version     int64           `json:"version"`
	AuditFields
}

// NewDebtHolder returns an empty holder.
func NewDebtHolder(t HolderType, id string) DebtHolder {
	return DebtHolder{
		HolderType:  t,
		HolderID:    id,
		TotalBilled: decimal.Zero,
		TotalPaid:   decimal.Zero,
		Outstanding: decimal.Zero,
	}
}

// LockKey is the key under which the holder is serialized.
func (h *DebtHolder) LockKey() string {
	return HolderLockKey(h.HolderType, h.HolderID)
}

// HolderLockKey builds the lock key for a holder.
func HolderLockKey(t HolderType, id string) string {
	return "holder:" + string(t) + ":" + id
}

// RegisterCharge increases outstanding and total billed.
func (h *DebtHolder) RegisterCharge(entity EntityRef, amount decimal.Decimal) error {
	if err := ValidatePositiveAmount("charge amount", amount); err != nil {
		return err
	}
	h.TotalBilled = h.TotalBilled.Add(amount)
	h.Outstanding = h.Outstanding.Add(amount)
	return nil
}

// RegisterPayment decreases outstanding and increases total paid.
func (h *DebtHolder) RegisterPayment(entity EntityRef, amount decimal.Decimal) error {
	if err := ValidatePositiveAmount("payment amount", amount); err != nil {
		return err
	}
	if amount.GreaterThan(h.Outstanding) {
		return fmt.Errorf("%w: %s %s owes %s, payment of %s for %s %s rejected",
			apperrors.ErrOverpaymentRejected, h.HolderType, h.HolderID, h.Outstanding, amount, entity.Type, entity.ID)
	}
	h.TotalPaid = h.TotalPaid.Add(amount)
	h.Outstanding = h.Outstanding.Sub(amount)
	return nil
}

// RecomputeFrom rebuilds the aggregate from per-entity billed and paid totals.
func (h *DebtHolder) RecomputeFrom(billed, paid []decimal.Decimal) {
	h.TotalBilled = decimal.Sum(decimal.Zero, billed...)
	h.TotalPaid = decimal.Sum(decimal.Zero, paid...)
	h.Outstanding = h.TotalBilled.Sub(h.TotalPaid)
}

// SameFigures reports whether two holders carry the same totals.
func (h *DebtHolder) SameFigures(other DebtHolder) bool {
	return h.TotalBilled.Equal(other.TotalBilled) &&
		h.TotalPaid.Equal(other.TotalPaid) &&
		h.Outstanding.Equal(other.Outstanding)
}
