package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/SscSPs/treasury_ledger/internal/apperrors"
	"github.com/SscSPs/treasury_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/treasury_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/treasury_ledger/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

const replayPageSize = 500

type reconciliationService struct {
	BaseService
	store   portsrepo.TreasuryStore
	locker  *keyLocker
	metrics portssvc.MetricsRecorder
}

// NewReconciliationService creates the ledger replay service. It owns a
// private locker; NewServiceContainer shares one with the orchestrator.
func NewReconciliationService(store portsrepo.TreasuryStore, lockTimeout time.Duration, metrics portssvc.MetricsRecorder) portssvc.ReconciliationSvc {
	if lockTimeout <= 0 {
		lockTimeout = defaultLockTimeout
	}
	return newReconciliationService(store, newKeyLocker(lockTimeout), metrics)
}

func newReconciliationService(store portsrepo.TreasuryStore, locker *keyLocker, metrics portssvc.MetricsRecorder) *reconciliationService {
	if metrics == nil {
		metrics = portssvc.NopMetrics{}
	}
	return &reconciliationService{store: store, locker: locker, metrics: metrics}
}

var _ portssvc.ReconciliationSvc = (*reconciliationService)(nil)

type holderRef struct {
	t  domain.HolderType
	id string
}

type holderTotals struct {
	billed []decimal.Decimal
	paid   []decimal.Decimal
}

// Reconcile replays the ledger from the opening figures and compares the
// result with the stored projections and debt aggregates. Mutations are held
// off for the duration, so the report describes one consistent state.
func (s *reconciliationService) Reconcile(ctx context.Context, repair bool) (report *domain.ReconciliationReport, err error) {
	const opName = "reconcile"
	start := time.Now()
	defer func() {
		s.metrics.ObserveOperation(opName, string(apperrors.KindOf(err)), time.Since(start))
	}()

	release, err := s.locker.AcquireExclusive(ctx)
	if err != nil {
		return nil, apperrors.Normalize(err)
	}
	defer release()

	ctx = context.WithoutCancel(ctx)
	report = &domain.ReconciliationReport{CheckedAt: s.Now()}

	stored, replayed, err := s.replayAccounts(ctx, report)
	if err != nil {
		s.LogError(ctx, err, "Ledger replay failed")
		return nil, apperrors.Normalize(err)
	}
	computed, holders, err := s.recomputeHolders(ctx, report)
	if err != nil {
		s.LogError(ctx, err, "Debt holder recompute failed")
		return nil, apperrors.Normalize(err)
	}

	if report.Clean() {
		s.LogInfo(ctx, "Reconciliation clean",
			slog.Int("entries_replayed", report.EntriesReplayed),
			slog.Int64("last_seq", report.LastSeq))
		return report, nil
	}

	for _, drift := range report.AccountDrifts {
		s.GetLogger(ctx).Warn("Account projection drift",
			slog.String("account_key", drift.AccountKey),
			slog.String("stored_balance", drift.StoredBalance.String()),
			slog.String("replayed_balance", drift.ReplayedBalance.String()),
			slog.Int("unapplied_entries", drift.UnappliedEntries))
	}
	for _, drift := range report.HolderDrifts {
		s.GetLogger(ctx).Warn("Debt holder drift",
			slog.String("holder_type", string(drift.HolderType)),
			slog.String("holder_id", drift.HolderID),
			slog.String("stored_outstanding", drift.StoredOutstanding.String()),
			slog.String("computed_outstanding", drift.ComputedOutstanding.String()))
	}

	if !repair {
		return report, nil
	}
	if err := s.repair(ctx, report, stored, replayed, computed, holders); err != nil {
		s.LogError(ctx, err, "Reconciliation repair failed")
		return nil, apperrors.Normalize(err)
	}
	report.Repaired = true
	s.LogInfo(ctx, "Reconciliation repaired drift",
		slog.Int("account_drifts", len(report.AccountDrifts)),
		slog.Int("holder_drifts", len(report.HolderDrifts)))
	return report, nil
}

func (s *reconciliationService) replayAccounts(ctx context.Context, report *domain.ReconciliationReport) (map[string]domain.Account, map[string]*domain.Account, error) {
	accounts, err := s.store.ListAccounts(ctx)
	if err != nil {
		return nil, nil, err
	}
	stored := make(map[string]domain.Account, len(accounts))
	replayed := make(map[string]*domain.Account, len(accounts))
	unapplied := make(map[string]int)
	for _, acc := range accounts {
		stored[acc.Key] = acc
		fresh := acc
		fresh.ResetProjection()
		replayed[acc.Key] = &fresh
	}

	var afterSeq int64
	for {
		page, err := s.store.ListEntries(ctx, afterSeq, replayPageSize)
		if err != nil {
			return nil, nil, err
		}
		for _, e := range page {
			acc, ok := replayed[e.AccountKey]
			if !ok {
				return nil, nil, fmt.Errorf("%w: entry %s references unknown account %s", apperrors.ErrInternal, e.EntryID, e.AccountKey)
			}
			acc.Replay(e)
			if e.Seq > stored[e.AccountKey].AppliedSeq {
				unapplied[e.AccountKey]++
			}
			afterSeq = e.Seq
			report.EntriesReplayed++
		}
		if len(page) < replayPageSize {
			break
		}
	}
	report.LastSeq = afterSeq

	for _, acc := range accounts {
		r := replayed[acc.Key]
		if acc.SameFigures(*r) && unapplied[acc.Key] == 0 {
			continue
		}
		report.AccountDrifts = append(report.AccountDrifts, domain.AccountDrift{
			AccountKey:       acc.Key,
			StoredBalance:    acc.CurrentBalance,
			ReplayedBalance:  r.CurrentBalance,
			StoredInflow:     acc.CumulativeInflow,
			ReplayedInflow:   r.CumulativeInflow,
			StoredOutflow:    acc.CumulativeOutflow,
			ReplayedOutflow:  r.CumulativeOutflow,
			UnappliedEntries: unapplied[acc.Key],
		})
	}
	return stored, replayed, nil
}

func (s *reconciliationService) recomputeHolders(ctx context.Context, report *domain.ReconciliationReport) (map[holderRef]domain.DebtHolder, map[holderRef]domain.DebtHolder, error) {
	totals := make(map[holderRef]*holderTotals)
	add := func(ref holderRef, billed, paid decimal.Decimal) {
		t, ok := totals[ref]
		if !ok {
			t = &holderTotals{}
			totals[ref] = t
		}
		t.billed = append(t.billed, billed)
		t.paid = append(t.paid, paid)
	}

	sales, err := s.store.ListSales(ctx)
	if err != nil {
		return nil, nil, err
	}
	for _, sale := range sales {
		add(holderRef{domain.HolderClient, sale.ClientID}, sale.TotalAmount, sale.AmountPaid)
	}
	orders, err := s.store.ListPurchaseOrders(ctx)
	if err != nil {
		return nil, nil, err
	}
	for _, order := range orders {
		add(holderRef{domain.HolderDistributor, order.DistributorID}, order.TotalCost, order.AmountPaid)
	}

	stored, err := s.store.ListDebtHolders(ctx)
	if err != nil {
		return nil, nil, err
	}
	holders := make(map[holderRef]domain.DebtHolder, len(stored))
	for _, h := range stored {
		holders[holderRef{h.HolderType, h.HolderID}] = h
		if _, ok := totals[holderRef{h.HolderType, h.HolderID}]; !ok {
			totals[holderRef{h.HolderType, h.HolderID}] = &holderTotals{}
		}
	}

	computed := make(map[holderRef]domain.DebtHolder, len(totals))
	for ref, t := range totals {
		c := domain.NewDebtHolder(ref.t, ref.id)
		c.RecomputeFrom(t.billed, t.paid)
		computed[ref] = c

		current, ok := holders[ref]
		if !ok {
			current = domain.NewDebtHolder(ref.t, ref.id)
		}
		if current.SameFigures(c) {
			continue
		}
		report.HolderDrifts = append(report.HolderDrifts, domain.HolderDrift{
			HolderType:          ref.t,
			HolderID:            ref.id,
			StoredOutstanding:   current.Outstanding,
			ComputedOutstanding: c.Outstanding,
			StoredBilled:        current.TotalBilled,
			ComputedBilled:      c.TotalBilled,
		})
	}
	sort.Slice(report.HolderDrifts, func(i, j int) bool {
		a, b := report.HolderDrifts[i], report.HolderDrifts[j]
		if a.HolderType != b.HolderType {
			return a.HolderType < b.HolderType
		}
		return a.HolderID < b.HolderID
	})
	return computed, holders, nil
}

// repair overwrites drifted projections with their replayed figures, keeping
// each row's version so optimistic checks still apply.
func (s *reconciliationService) repair(ctx context.Context, report *domain.ReconciliationReport, stored map[string]domain.Account, replayed map[string]*domain.Account, computed, holders map[holderRef]domain.DebtHolder) error {
	actor, now := s.Actor(ctx), s.Now()
	return s.store.WithinTx(ctx, func(ctx context.Context, tx portsrepo.TreasuryTx) error {
		if len(report.AccountDrifts) > 0 {
			keys := make([]string, 0, len(report.AccountDrifts))
			for _, d := range report.AccountDrifts {
				keys = append(keys, d.AccountKey)
			}
			locked, err := tx.LockAccounts(ctx, keys)
			if err != nil {
				return err
			}
			fixed := make([]domain.Account, 0, len(keys))
			for _, key := range keys {
				acc := locked[key]
				if acc.Version != stored[key].Version {
					return apperrors.Newf(apperrors.KindContention, "account %s changed during reconciliation", key)
				}
				r := replayed[key]
				acc.CurrentBalance = r.CurrentBalance
				acc.CumulativeInflow = r.CumulativeInflow
				acc.CumulativeOutflow = r.CumulativeOutflow
				acc.AppliedSeq = r.AppliedSeq
				acc.Touch(actor, now)
				fixed = append(fixed, acc)
			}
			if err := tx.SaveAccounts(ctx, fixed); err != nil {
				return err
			}
		}

		for _, d := range report.HolderDrifts {
			ref := holderRef{d.HolderType, d.HolderID}
			holder, err := tx.LockDebtHolder(ctx, ref.t, ref.id)
			switch {
			case errors.Is(err, apperrors.ErrNotFound):
				fresh := domain.NewDebtHolder(ref.t, ref.id)
				holder = &fresh
			case err != nil:
				return err
			case holder.Version != holders[ref].Version:
				return apperrors.Newf(apperrors.KindContention, "%s %s changed during reconciliation", ref.t, ref.id)
			}
			c := computed[ref]
			holder.TotalBilled, holder.TotalPaid, holder.Outstanding = c.TotalBilled, c.TotalPaid, c.Outstanding
			holder.Touch(actor, now)
			if err := tx.SaveDebtHolder(ctx, *holder); err != nil {
				return err
			}
		}
		return nil
	})
}
