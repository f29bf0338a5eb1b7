package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/treasury_ledger/internal/core/domain"
	"github.com/SscSPs/treasury_ledger/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLedgerEntryMapping_EntityReference(t *testing.T) {
	counter := "leftie"
	plain := domain.LedgerEntry{
		EntryID:           "e1",
		AccountKey:        "azteca",
		Kind:              domain.EntryTransferOut,
		Amount:            decimal.NewFromInt(10),
		CounterAccountKey: &counter,
		CreatedAt:         time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	m := ToModelLedgerEntry(plain)
	assert.Nil(t, m.EntityType, "manual entries store NULL entity columns")
	assert.Nil(t, m.EntityID)
	assert.Equal(t, plain, ToDomainLedgerEntry(m))

	linked := plain
	linked.Entity = domain.EntityRef{Type: domain.EntitySale, ID: "s1"}
	m = ToModelLedgerEntry(linked)
	if assert.NotNil(t, m.EntityType) {
		assert.Equal(t, "sale", *m.EntityType)
	}
	assert.Equal(t, linked.Entity, ToDomainLedgerEntry(m).Entity)
}

func TestSaleMapping_SplitColumns(t *testing.T) {
	sale := domain.Sale{
		SaleID:      "s1",
		Split:       domain.SaleSplit{VaultShare: decimal.NewFromInt(630000), FreightShare: decimal.NewFromInt(50000), ProfitShare: decimal.Zero},
		Recognized:  domain.SaleSplit{VaultShare: decimal.NewFromInt(315000), FreightShare: decimal.NewFromInt(25000), ProfitShare: decimal.Zero},
		Status:      domain.StatusPartial,
		TotalAmount: decimal.NewFromInt(680000),
		AuditFields: domain.AuditFields{CreatedBy: "u1", LastUpdatedBy: "u1"},
	}
	m := ToModelSale(sale)
	assert.True(t, m.VaultShare.Equal(decimal.NewFromInt(630000)))
	assert.True(t, m.RecognizedFreight.Equal(decimal.NewFromInt(25000)))
	assert.Equal(t, "partial", m.Status)
	assert.Equal(t, sale, ToDomainSale(m))
}

func TestAuditFieldsMapping(t *testing.T) {
	m := ToModelAuditFields(domain.AuditFields{})
	assert.Equal(t, domain.SystemActor, m.CreatedBy)
	assert.Equal(t, domain.SystemActor, m.LastUpdatedBy)
	assert.True(t, m.CreatedAt.IsZero())

	local := time.Date(2024, 5, 1, 8, 0, 0, 0, time.FixedZone("CST", -6*3600))
	d := ToDomainAuditFields(models.AuditFields{CreatedAt: local, CreatedBy: "u1", LastUpdatedAt: local, LastUpdatedBy: "u2"})
	assert.Equal(t, time.UTC, d.CreatedAt.Location())
	assert.True(t, d.CreatedAt.Equal(local))
	assert.Equal(t, "u2", d.LastUpdatedBy)
}
