package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // actor id from the auth token, "system" otherwise
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// SystemActor is recorded when an operation runs without an authenticated caller
// (bootstrap, CLI, reconciliation).
const SystemActor = "system"

// Touch stamps the update fields, and the creation fields when they are still empty.
func (a *AuditFields) Touch(actor string, at time.Time) {
	if actor == "" {
		actor = SystemActor
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = at
		a.CreatedBy = actor
	}
	a.LastUpdatedAt = at
	a.LastUpdatedBy = actor
}
