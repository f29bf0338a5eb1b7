package mapping

import (
	"time"

	"github.com/SscSPs/treasury_ledger/internal/core/domain"
	"github.com/SscSPs/treasury_ledger/internal/models"
)

// ToModelAuditFields fills blank actors with the system actor so the NOT NULL
// audit columns never receive an empty string.
func ToModelAuditFields(d domain.AuditFields) models.AuditFields {
	return models.AuditFields{
		CreatedAt:     d.CreatedAt,
		CreatedBy:     actorOrSystem(d.CreatedBy),
		LastUpdatedAt: d.LastUpdatedAt,
		LastUpdatedBy: actorOrSystem(d.LastUpdatedBy),
	}
}

// ToDomainAuditFields reports stored timestamps in UTC regardless of the
// session time zone they were read with.
func ToDomainAuditFields(m models.AuditFields) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     utc(m.CreatedAt),
		CreatedBy:     m.CreatedBy,
		LastUpdatedAt: utc(m.LastUpdatedAt),
		LastUpdatedBy: m.LastUpdatedBy,
	}
}

func actorOrSystem(actor string) string {
	if actor == "" {
		return domain.SystemActor
	}
	return actor
}

func utc(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}
