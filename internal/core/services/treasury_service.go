package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/treasury_ledger/internal/apperrors"
	"github.com/SscSPs/treasury_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/treasury_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/treasury_ledger/internal/core/ports/services"
	"github.com/SscSPs/treasury_ledger/internal/platform/config"
	"github.com/shopspring/decimal"
)

// RecognitionMode decides when a sale's split reaches the treasury accounts.
type RecognitionMode string

const (
	// RecognitionAccrual credits the whole split when the sale is recorded.
	RecognitionAccrual RecognitionMode = "accrual"
	// RecognitionCash credits each bucket only as the client pays.
	RecognitionCash RecognitionMode = "cash"
)

const (
	defaultLockTimeout    = 5 * time.Second
	defaultIdempotencyTTL = 24 * time.Hour
)

type treasuryService struct {
	BaseService
	store   portsrepo.TreasuryStore
	idem    portsrepo.IdempotencyStore
	locker  *keyLocker
	clock   *monotonicClock
	metrics portssvc.MetricsRecorder

	lockTimeout    time.Duration
	idemTTL        time.Duration
	mode           RecognitionMode
	splitAccounts  config.SplitAccounts
	defaultFreight decimal.Decimal
	debts          debtTracker
}

// TreasuryOption configures the treasury service.
type TreasuryOption func(*treasuryService)

// WithLockTimeout bounds how long an operation waits for its locks.
func WithLockTimeout(d time.Duration) TreasuryOption {
	return func(s *treasuryService) {
		if d > 0 {
			s.lockTimeout = d
		}
	}
}

// WithRecognitionMode selects accrual or cash recognition for sales.
func WithRecognitionMode(mode RecognitionMode) TreasuryOption {
	return func(s *treasuryService) { s.mode = mode }
}

// WithSplitAccounts names the accounts credited by a sale's split.
func WithSplitAccounts(accounts config.SplitAccounts) TreasuryOption {
	return func(s *treasuryService) { s.splitAccounts = accounts }
}

// WithDefaultFreightRate sets the per-unit freight used when a sale gives none.
func WithDefaultFreightRate(rate decimal.Decimal) TreasuryOption {
	return func(s *treasuryService) { s.defaultFreight = rate }
}

// WithIdempotency enables request keys, remembered for ttl.
func WithIdempotency(store portsrepo.IdempotencyStore, ttl time.Duration) TreasuryOption {
	return func(s *treasuryService) {
		s.idem = store
		if ttl > 0 {
			s.idemTTL = ttl
		}
	}
}

// WithMetrics sets the metrics recorder.
func WithMetrics(m portssvc.MetricsRecorder) TreasuryOption {
	return func(s *treasuryService) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithClock overrides the wall clock, mainly for tests.
func WithClock(now func() time.Time) TreasuryOption {
	return func(s *treasuryService) { s.now = now }
}

// withLocker shares a locker with the reconciliation service.
func withLocker(l *keyLocker) TreasuryOption {
	return func(s *treasuryService) { s.locker = l }
}

// NewTreasuryService creates the transaction orchestrator.
func NewTreasuryService(store portsrepo.TreasuryStore, opts ...TreasuryOption) portssvc.TreasurySvcFacade {
	s := &treasuryService{
		store:          store,
		metrics:        portssvc.NopMetrics{},
		lockTimeout:    defaultLockTimeout,
		idemTTL:        defaultIdempotencyTTL,
		mode:           RecognitionAccrual,
		splitAccounts:  config.SplitAccounts{Vault: "boveda_monte", Freight: "flete_sur", Profit: "utilidades"},
		defaultFreight: decimal.NewFromInt(500),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.locker == nil {
		s.locker = newKeyLocker(s.lockTimeout)
	}
	s.clock = newMonotonicClock(s.now)
	return s
}

var _ portssvc.TreasurySvcFacade = (*treasuryService)(nil)

// operation describes the serialization needs of one mutation.
type operation struct {
	name           string
	idempotencyKey string
	lockKeys       []string // in-process keys, accounts included automatically
	accounts       []string // accounts loaded and locked inside the unit of work
}

// execute runs fn as one atomic unit of work: idempotency reservation, ordered
// in-process locks, then a store transaction. Once locks are requested the
// caller's cancellation no longer applies; the operation reaches a definite
// outcome.
func (s *treasuryService) execute(ctx context.Context, op operation, fn func(ctx context.Context, w *unitOfWork) error) (err error) {
	start := time.Now()
	logger := s.GetLogger(ctx).With(slog.String("operation", op.name))
	defer func() {
		s.metrics.ObserveOperation(op.name, string(apperrors.KindOf(err)), time.Since(start))
	}()

	if op.idempotencyKey != "" && s.idem != nil {
		key := op.name + ":" + op.idempotencyKey
		reserved, rerr := s.idem.Reserve(ctx, key, s.idemTTL)
		if rerr != nil {
			logger.Error("idempotency store unavailable", slog.String("error", rerr.Error()))
			return apperrors.NewAppError(apperrors.KindStorageUnavailable, "idempotency store unavailable", rerr)
		}
		if !reserved {
			logger.Info("duplicate request rejected", slog.String("idempotencyKey", op.idempotencyKey))
			return apperrors.Newf(apperrors.KindDuplicate, "request %s was already processed", op.idempotencyKey)
		}
		defer func() {
			if err == nil {
				return
			}
			if relErr := s.idem.Release(context.WithoutCancel(ctx), key); relErr != nil {
				logger.Warn("failed to release idempotency key", slog.String("error", relErr.Error()))
			}
		}()
	}

	keys := make([]string, 0, len(op.lockKeys)+len(op.accounts))
	keys = append(keys, op.lockKeys...)
	for _, acc := range op.accounts {
		keys = append(keys, accountLockKey(acc))
	}

	waitStart := time.Now()
	release, err := s.locker.Acquire(ctx, keys...)
	s.metrics.ObserveLockWait(op.name, time.Since(waitStart))
	if err != nil {
		logger.Warn("lock acquisition timed out", slog.String("error", err.Error()))
		return apperrors.Normalize(err)
	}
	defer release()

	var work *unitOfWork
	txCtx := context.WithoutCancel(ctx)
	err = s.store.WithinTx(txCtx, func(ctx context.Context, tx portsrepo.TreasuryTx) error {
		work = newUnitOfWork(tx, s.Actor(ctx), s.clock.Next())
		if err := work.lockAccounts(ctx, op.accounts); err != nil {
			return err
		}
		return fn(ctx, work)
	})
	if err != nil {
		normalized := apperrors.Normalize(err)
		s.logFailure(logger, normalized)
		return normalized
	}

	for _, acc := range work.balances() {
		s.metrics.SetBalance(acc.Key, acc.CurrencyCode, acc.CurrentBalance.InexactFloat64())
	}
	logger.Info("operation committed",
		slog.String("correlationID", work.correlationID),
		slog.Duration("elapsed", time.Since(start)))
	return nil
}

// reject reports a request refused before any lock was taken.
func (s *treasuryService) reject(ctx context.Context, opName string, err error) error {
	normalized := apperrors.Normalize(err)
	s.metrics.ObserveOperation(opName, string(normalized.Kind), 0)
	s.logFailure(s.GetLogger(ctx).With(slog.String("operation", opName)), normalized)
	return normalized
}

func (s *treasuryService) logFailure(logger *slog.Logger, err *apperrors.AppError) {
	attrs := []any{slog.String("errorKind", string(err.Kind)), slog.String("error", err.Error())}
	switch err.Kind {
	case apperrors.KindSplitRoundingViolation, apperrors.KindInternal, apperrors.KindStorageUnavailable:
		logger.Error("operation failed", attrs...)
	case apperrors.KindContention:
		logger.Warn("operation failed", attrs...)
	default:
		logger.Info("operation rejected", attrs...)
	}
}

func (s *treasuryService) splitAccountFor(b domain.SplitBucket) string {
	switch b {
	case domain.BucketVault:
		return s.splitAccounts.Vault
	case domain.BucketFreight:
		return s.splitAccounts.Freight
	default:
		return s.splitAccounts.Profit
	}
}

func (s *treasuryService) splitAccountKeys() []string {
	return []string{s.splitAccounts.Vault, s.splitAccounts.Freight, s.splitAccounts.Profit}
}

// creditSplit posts one income entry per non-zero bucket.
func (s *treasuryService) creditSplit(w *unitOfWork, credits domain.SaleSplit, entity domain.EntityRef, currency, memo string) error {
	for _, b := range domain.SplitBuckets {
		share := credits.Share(b)
		if share.IsZero() {
			continue
		}
		key := s.splitAccountFor(b)
		acc, err := w.account(key)
		if err != nil {
			return err
		}
		if acc.CurrencyCode != currency {
			return fmt.Errorf("%w: %s share goes to %s in %s, sale is in %s", apperrors.ErrValidation, b, key, acc.CurrencyCode, currency)
		}
		note := memo
		if note == "" {
			note = fmt.Sprintf("%s %s: %s share", entity.Type, entity.ID, b)
		}
		if err := w.post(key, domain.EntryIncome, share, note, entryOpts{entity: entity}); err != nil {
			return err
		}
	}
	return nil
}

func currencyOr(code, fallback string) string {
	if code = strings.ToUpper(strings.TrimSpace(code)); code != "" {
		return code
	}
	return fallback
}

// notFoundAs converts a store miss into the kind callers expect for the resource.
func notFoundAs(err error, kind apperrors.Kind, format string, args ...any) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return apperrors.Newf(kind, format, args...)
	}
	return err
}

func (s *treasuryService) GetSale(ctx context.Context, saleID string) (*domain.Sale, error) {
	sale, err := s.store.FindSaleByID(ctx, saleID)
	if err != nil {
		return nil, apperrors.Normalize(err)
	}
	return sale, nil
}

func (s *treasuryService) GetPurchaseOrder(ctx context.Context, orderID string) (*domain.PurchaseOrder, error) {
	order, err := s.store.FindPurchaseOrderByID(ctx, orderID)
	if err != nil {
		return nil, apperrors.Normalize(err)
	}
	return order, nil
}

func (s *treasuryService) GetDebtHolder(ctx context.Context, holderType domain.HolderType, holderID string) (*domain.DebtHolder, error) {
	if !holderType.Valid() {
		return nil, apperrors.Newf(apperrors.KindValidation, "unknown holder type %q", holderType)
	}
	holder, err := s.store.FindDebtHolder(ctx, holderType, holderID)
	if err != nil {
		return nil, apperrors.Normalize(err)
	}
	return holder, nil
}
