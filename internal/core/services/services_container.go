package services

import (
	portsrepo "github.com/SscSPs/treasury_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/treasury_ledger/internal/core/ports/services"
	"github.com/SscSPs/treasury_ledger/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// The orchestrator and the reconciliation service share one locker so a replay
// never observes a half-applied operation.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, metrics portssvc.MetricsRecorder) *portssvc.ServiceContainer {
	if metrics == nil {
		metrics = portssvc.NopMetrics{}
	}
	lockTimeout := cfg.LockTimeout
	if lockTimeout <= 0 {
		lockTimeout = defaultLockTimeout
	}
	locker := newKeyLocker(lockTimeout)

	opts := []TreasuryOption{
		withLocker(locker),
		WithLockTimeout(lockTimeout),
		WithRecognitionMode(RecognitionMode(cfg.RecognitionMode)),
		WithSplitAccounts(cfg.SplitAccounts),
		WithDefaultFreightRate(cfg.DefaultFreightRate),
		WithMetrics(metrics),
	}
	if repos.Idempotency != nil {
		opts = append(opts, WithIdempotency(repos.Idempotency, cfg.IdempotencyTTL))
	}

	return &portssvc.ServiceContainer{
		Account:        NewAccountService(repos.Store),
		Treasury:       NewTreasuryService(repos.Store, opts...),
		Reconciliation: newReconciliationService(repos.Store, locker, metrics),
	}
}
