package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryKind is the direction of a ledger movement.
type EntryKind string

const (
	EntryIncome      EntryKind = "income"
	EntryExpense     EntryKind = "expense"
	EntryTransferOut EntryKind = "transfer_out"
	EntryTransferIn  EntryKind = "transfer_in"
)

// IsCredit reports whether the kind adds money to the account.
func (k EntryKind) IsCredit() bool { return k == EntryIncome || k == EntryTransferIn }

// IsDebit reports whether the kind removes money from the account.
func (k EntryKind) IsDebit() bool { return k == EntryExpense || k == EntryTransferOut }

// Opposite returns the kind that undoes k.
func (k EntryKind) Opposite() EntryKind {
	switch k {
	case EntryIncome:
		return EntryExpense
	case EntryExpense:
		return EntryIncome
	case EntryTransferOut:
		return EntryTransferIn
	case EntryTransferIn:
		return EntryTransferOut
	}
	return k
}

// EntityType names the business entity a ledger entry or payment refers to.
type EntityType string

const (
	EntityNone          EntityType = ""
	EntitySale          EntityType = "sale"
	EntityPurchaseOrder EntityType = "purchase_order"
)

// EntityRef points at the business entity that originated a movement.
type EntityRef struct {
	Type EntityType `json:"type,omitempty"`
	ID   string     `json:"id,omitempty"`
}

// IsZero reports whether the ref points at nothing (manual movements).
func (r EntityRef) IsZero() bool { return r.Type == EntityNone && r.ID == "" }

// LedgerEntry is an immutable record of one balance-affecting event.
type LedgerEntry struct {
	EntryID           string          `json:"entryID"`
	Seq               int64           `json:"seq"` // assigned by the store on append
	AccountKey        string          `json:"accountKey"`
	Kind              EntryKind       `json:"kind"`
	Amount            decimal.Decimal `json:"amount"` // always positive
	CurrencyCode      string          `json:"currencyCode"`
	Memo              string          `json:"memo"`
	CounterAccountKey *string         `json:"counterAccountKey,omitempty"`
	Entity            EntityRef       `json:"entity"`
	CorrelationID     string          `json:"correlationID"`
	ReversesEntryID   *string         `json:"reversesEntryID,omitempty"`
	BalanceAfter      decimal.Decimal `json:"balanceAfter"`
	CreatedAt         time.Time       `json:"createdAt"`
	CreatedBy         string          `json:"createdBy"`
}

// Reversible reports whether the entry may be undone by a reversing entry.
// Entries tied to a sale or purchase order move with their entity.
func (e *LedgerEntry) Reversible() bool {
	return e.Entity.IsZero() && e.ReversesEntryID == nil
}
