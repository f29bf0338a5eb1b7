package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/SscSPs/treasury_ledger/internal/apperrors"
	"github.com/SscSPs/treasury_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/treasury_ledger/internal/core/ports/repositories"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// unitOfWork stages the account effects of one operation. Entries are
// validated against the staged projection as they are posted, and flush
// writes the ledger before the projection.
type unitOfWork struct {
	tx            portsrepo.TreasuryTx
	actor         string
	at            time.Time
	correlationID string

	accounts map[string]*domain.Account
	pending  []domain.LedgerEntry
}

type entryOpts struct {
	counter  *string
	entity   domain.EntityRef
	reverses *string
}

func newUnitOfWork(tx portsrepo.TreasuryTx, actor string, at time.Time) *unitOfWork {
	return &unitOfWork{
		tx:            tx,
		actor:         actor,
		at:            at,
		correlationID: uuid.NewString(),
		accounts:      make(map[string]*domain.Account),
	}
}

// lockAccounts loads the accounts this operation may touch.
func (w *unitOfWork) lockAccounts(ctx context.Context, keys []string) error {
	if len(keys) == 0 {
		return nil
	}
	locked, err := w.tx.LockAccounts(ctx, sortedUnique(keys))
	if err != nil {
		return err
	}
	for key, acc := range locked {
		acc := acc
		w.accounts[key] = &acc
	}
	return nil
}

func (w *unitOfWork) account(key string) (*domain.Account, error) {
	acc, ok := w.accounts[key]
	if !ok {
		return nil, fmt.Errorf("%w: account %s", apperrors.ErrUnknownAccount, key)
	}
	return acc, nil
}

// post applies one movement to the staged account and queues its entry.
func (w *unitOfWork) post(key string, kind domain.EntryKind, amount decimal.Decimal, memo string, opts entryOpts) error {
	acc, err := w.account(key)
	if err != nil {
		return err
	}
	if err := acc.ApplyDelta(kind, amount); err != nil {
		return err
	}
	w.pending = append(w.pending, domain.LedgerEntry{
		EntryID:           uuid.NewString(),
		AccountKey:        key,
		Kind:              kind,
		Amount:            amount,
		CurrencyCode:      acc.CurrencyCode,
		Memo:              memo,
		CounterAccountKey: opts.counter,
		Entity:            opts.entity,
		CorrelationID:     w.correlationID,
		ReversesEntryID:   opts.reverses,
		BalanceAfter:      acc.CurrentBalance,
		CreatedAt:         w.at,
		CreatedBy:         w.actor,
	})
	return nil
}

// touched returns the staged accounts that received entries, ordered by key.
func (w *unitOfWork) touched() []domain.Account {
	seen := make(map[string]struct{})
	out := make([]domain.Account, 0, len(w.pending))
	for _, e := range w.pending {
		if _, ok := seen[e.AccountKey]; ok {
			continue
		}
		seen[e.AccountKey] = struct{}{}
		out = append(out, *w.accounts[e.AccountKey])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// flush appends the pending entries and then saves the projections that
// absorbed them, advancing each account's watermark to its last entry.
func (w *unitOfWork) flush(ctx context.Context) ([]domain.LedgerEntry, error) {
	if len(w.pending) == 0 {
		return nil, nil
	}
	saved, err := w.tx.AppendEntries(ctx, w.pending)
	if err != nil {
		return nil, err
	}

	for _, e := range saved {
		acc := w.accounts[e.AccountKey]
		if e.Seq > acc.AppliedSeq {
			acc.AppliedSeq = e.Seq
		}
	}

	accounts := w.touched()
	for i := range accounts {
		if !accounts[i].Conserved() {
			return nil, fmt.Errorf("%w: account %s violates balance conservation", apperrors.ErrInternal, accounts[i].Key)
		}
		accounts[i].Touch(w.actor, w.at)
	}
	if err := w.tx.SaveAccounts(ctx, accounts); err != nil {
		return nil, err
	}
	for _, acc := range accounts {
		staged := w.accounts[acc.Key]
		*staged = acc
		staged.Version++
	}

	w.pending = nil
	return saved, nil
}

// balances returns the staged accounts, for publishing after commit.
func (w *unitOfWork) balances() []domain.Account {
	out := make([]domain.Account, 0, len(w.accounts))
	for _, acc := range w.accounts {
		out = append(out, *acc)
	}
	return out
}
