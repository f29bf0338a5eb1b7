package services

import (
	"github.com/SscSPs/treasury_ledger/internal/core/domain"
	"github.com/SscSPs/treasury_ledger/internal/dto"
)

func (s *TreasuryServiceSuite) TestReconcile_ReplayMatchesProjection() {
	_, err := s.treasury.RecordSale(s.ctx, fixtureSale("sale-r"))
	s.Require().NoError(err)
	_, err = s.treasury.RecordTransfer(s.ctx, dto.RecordTransferRequest{FromAccountKey: "boveda_monte", ToAccountKey: "azteca", Amount: d("1000")})
	s.Require().NoError(err)

	report, err := s.recon.Reconcile(s.ctx, false)
	s.Require().NoError(err)
	s.True(report.Clean())
	s.Equal(4, report.EntriesReplayed)
	s.EqualValues(4, report.LastSeq)

	again, err := s.recon.Reconcile(s.ctx, false)
	s.Require().NoError(err)
	s.Equal(report.EntriesReplayed, again.EntriesReplayed, "replay is idempotent")
}

func (s *TreasuryServiceSuite) TestReconcile_DetectsAndRepairsDrift() {
	_, err := s.treasury.RecordManualMovement(s.ctx, dto.RecordMovementRequest{AccountKey: "azteca", Kind: "income", Amount: d("500")})
	s.Require().NoError(err)

	// Simulate a crash between the ledger append and the projection update.
	acc, err := s.store.FindAccountByKey(s.ctx, "azteca")
	s.Require().NoError(err)
	stale := *acc
	stale.CurrentBalance = d("150000")
	stale.CumulativeInflow = stale.CumulativeInflow.Sub(d("500"))
	stale.AppliedSeq = 0
	s.store.OverwriteAccount(stale)

	report, err := s.recon.Reconcile(s.ctx, false)
	s.Require().NoError(err)
	s.Require().Len(report.AccountDrifts, 1)
	drift := report.AccountDrifts[0]
	s.Equal("azteca", drift.AccountKey)
	s.Equal(1, drift.UnappliedEntries)
	s.True(drift.StoredBalance.Equal(d("150000")))
	s.True(drift.ReplayedBalance.Equal(d("150500")))
	s.False(report.Repaired)

	report, err = s.recon.Reconcile(s.ctx, true)
	s.Require().NoError(err)
	s.True(report.Repaired)
	s.True(s.balance("azteca").Equal(d("150500")))
	s.assertClean()
}

func (s *TreasuryServiceSuite) TestReconcile_RecomputesDebtHolders() {
	_, err := s.treasury.RecordSale(s.ctx, fixtureSale("sale-h"))
	s.Require().NoError(err)

	holder, err := s.treasury.GetDebtHolder(s.ctx, domain.HolderClient, "cliente-1")
	s.Require().NoError(err)
	s.True(holder.Outstanding.Equal(d("680000")))

	report, err := s.recon.Reconcile(s.ctx, false)
	s.Require().NoError(err)
	s.Empty(report.HolderDrifts)
}
