package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/treasury_ledger/internal/core/domain"
)

// EntryFilter narrows a ledger query. Zero values mean "no bound".
type EntryFilter struct {
	From     *time.Time
	To       *time.Time
	AfterSeq int64 // cursor for pagination
	Limit    int
}

// LedgerReader defines read operations for the movement log
type LedgerReader interface {
	// FindEntryByID retrieves a single entry. Returns apperrors.ErrNotFound when absent.
	FindEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error)

	// ListEntriesByAccount returns an account's entries ordered by sequence.
	ListEntriesByAccount(ctx context.Context, accountKey string, filter EntryFilter) ([]domain.LedgerEntry, error)

	// ListEntries returns entries with seq > afterSeq in sequence order, used for replay.
	ListEntries(ctx context.Context, afterSeq int64, limit int) ([]domain.LedgerEntry, error)
}

// LedgerTxSupport defines ledger operations available inside a unit of work.
type LedgerTxSupport interface {
	// AppendEntries durably records the entries and returns them with Seq assigned.
	AppendEntries(ctx context.Context, entries []domain.LedgerEntry) ([]domain.LedgerEntry, error)

	// FindEntriesByCorrelationID returns every entry of one logical operation.
	FindEntriesByCorrelationID(ctx context.Context, correlationID string) ([]domain.LedgerEntry, error)

	// HasReversal reports whether a reversing entry already references entryID.
	HasReversal(ctx context.Context, entryID string) (bool, error)
}
