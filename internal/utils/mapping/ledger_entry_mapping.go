package mapping

import (
	"github.com/SscSPs/treasury_ledger/internal/core/domain"
	"github.com/SscSPs/treasury_ledger/internal/models"
)

// ToModelLedgerEntry converts a domain LedgerEntry to a model LedgerEntry.
// An empty entity reference is stored as NULL.
func ToModelLedgerEntry(d domain.LedgerEntry) models.LedgerEntry {
	m := models.LedgerEntry{
		Seq:               d.Seq,
		EntryID:           d.EntryID,
		AccountKey:        d.AccountKey,
		Kind:              string(d.Kind),
		Amount:            d.Amount,
		CurrencyCode:      d.CurrencyCode,
		Memo:              d.Memo,
		CounterAccountKey: d.CounterAccountKey,
		CorrelationID:     d.CorrelationID,
		ReversesEntryID:   d.ReversesEntryID,
		BalanceAfter:      d.BalanceAfter,
		CreatedAt:         d.CreatedAt,
		CreatedBy:         d.CreatedBy,
	}
	if !d.Entity.IsZero() {
		entityType := string(d.Entity.Type)
		entityID := d.Entity.ID
		m.EntityType = &entityType
		m.EntityID = &entityID
	}
	return m
}

// ToDomainLedgerEntry converts a model LedgerEntry to a domain LedgerEntry
func ToDomainLedgerEntry(m models.LedgerEntry) domain.LedgerEntry {
	d := domain.LedgerEntry{
		EntryID:           m.EntryID,
		Seq:               m.Seq,
		AccountKey:        m.AccountKey,
		Kind:              domain.EntryKind(m.Kind),
		Amount:            m.Amount,
		CurrencyCode:      m.CurrencyCode,
		Memo:              m.Memo,
		CounterAccountKey: m.CounterAccountKey,
		CorrelationID:     m.CorrelationID,
		ReversesEntryID:   m.ReversesEntryID,
		BalanceAfter:      m.BalanceAfter,
		CreatedAt:         m.CreatedAt,
		CreatedBy:         m.CreatedBy,
	}
	if m.EntityType != nil && m.EntityID != nil {
		d.Entity = domain.EntityRef{Type: domain.EntityType(*m.EntityType), ID: *m.EntityID}
	}
	return d
}

// ToDomainLedgerEntries converts a slice of model entries
func ToDomainLedgerEntries(ms []models.LedgerEntry) []domain.LedgerEntry {
	out := make([]domain.LedgerEntry, len(ms))
	for i, m := range ms {
		out[i] = ToDomainLedgerEntry(m)
	}
	return out
}
