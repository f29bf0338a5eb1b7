package mapping

import (
	"github.com/SscSPs/treasury_ledger/internal/core/domain"
	"github.com/SscSPs/treasury_ledger/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountKey:        d.Key,
		Name:              d.Name,
		Category:          string(d.Category),
		CurrencyCode:      d.CurrencyCode,
		InitialBalance:    d.InitialBalance,
		CurrentBalance:    d.CurrentBalance,
		CumulativeInflow:  d.CumulativeInflow,
		CumulativeOutflow: d.CumulativeOutflow,
		OpeningInflow:     d.OpeningInflow,
		OpeningOutflow:    d.OpeningOutflow,
		IsActive:          d.IsActive,
		AllowOverdraft:    d.AllowOverdraft,
		AppliedSeq:        d.AppliedSeq,
		Version:           d.Version,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		Key:               m.AccountKey,
		Name:              m.Name,
		Category:          domain.AccountCategory(m.Category),
		CurrencyCode:      m.CurrencyCode,
		InitialBalance:    m.InitialBalance,
		CurrentBalance:    m.CurrentBalance,
		CumulativeInflow:  m.CumulativeInflow,
		CumulativeOutflow: m.CumulativeOutflow,
		OpeningInflow:     m.OpeningInflow,
		OpeningOutflow:    m.OpeningOutflow,
		IsActive:          m.IsActive,
		AllowOverdraft:    m.AllowOverdraft,
		AppliedSeq:        m.AppliedSeq,
		Version:           m.Version,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}
