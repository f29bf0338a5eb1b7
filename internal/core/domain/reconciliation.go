package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountDrift compares an account's cached projection with the ledger replay.
type AccountDrift struct {
	AccountKey       string          `json:"accountKey"`
	StoredBalance    decimal.Decimal `json:"storedBalance"`
	ReplayedBalance  decimal.Decimal `json:"replayedBalance"`
	StoredInflow     decimal.Decimal `json:"storedInflow"`
	ReplayedInflow   decimal.Decimal `json:"replayedInflow"`
	StoredOutflow    decimal.Decimal `json:"storedOutflow"`
	ReplayedOutflow  decimal.Decimal `json:"replayedOutflow"`
	UnappliedEntries int             `json:"unappliedEntries"` // entries with seq above the account's applied watermark
}

// HolderDrift compares a debt holder's incremental totals with a recomputation.
type HolderDrift struct {
	HolderType          HolderType      `json:"holderType"`
	HolderID            string          `json:"holderID"`
	StoredOutstanding   decimal.Decimal `json:"storedOutstanding"`
	ComputedOutstanding decimal.Decimal `json:"computedOutstanding"`
	StoredBilled        decimal.Decimal `json:"storedBilled"`
	ComputedBilled      decimal.Decimal `json:"computedBilled"`
}

// ReconciliationReport is the outcome of a ledger replay.
type ReconciliationReport struct {
	CheckedAt       time.Time      `json:"checkedAt"`
	EntriesReplayed int            `json:"entriesReplayed"`
	LastSeq         int64          `json:"lastSeq"`
	AccountDrifts   []AccountDrift `json:"accountDrifts"`
	HolderDrifts    []HolderDrift  `json:"holderDrifts"`
	Repaired        bool           `json:"repaired"`
}

// Clean reports whether the replay found nothing to repair.
func (r *ReconciliationReport) Clean() bool {
	return len(r.AccountDrifts) == 0 && len(r.HolderDrifts) == 0
}
