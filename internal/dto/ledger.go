package dto

import (
	"time"

	"github.com/SscSPs/treasury_ledger/internal/core/domain"
)

// ListEntriesParams defines the query parameters for listing an account's ledger entries.
type ListEntriesParams struct {
	From      *time.Time `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To        *time.Time `form:"to" time_format:"2006-01-02T15:04:05Z07:00"`
	Limit     int        `form:"limit" validate:"omitempty,min=1,max=500"`
	NextToken *string    `form:"nextToken"`
}

// ListEntriesResponse is a page of ledger entries.
type ListEntriesResponse struct {
	Entries   []domain.LedgerEntry `json:"entries"`
	NextToken *string              `json:"nextToken,omitempty"`
}

// ReverseEntryRequest carries the memo for a reversing entry.
type ReverseEntryRequest struct {
	Memo           string `json:"memo" validate:"max=500"`
	IdempotencyKey string `json:"-"`
}

// ReconcileRequest asks for a ledger replay, optionally repairing drift.
type ReconcileRequest struct {
	Repair bool `json:"repair"`
}
