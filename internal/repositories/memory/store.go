// Package memory is an in-process TreasuryStore. Units of work are serialized
// and staged; a commit publishes every staged write at once.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/SscSPs/treasury_ledger/internal/apperrors"
	"github.com/SscSPs/treasury_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/treasury_ledger/internal/core/ports/repositories"
)

type holderKey struct {
	t  domain.HolderType
	id string
}

// Store keeps all treasury state in maps guarded by a RWMutex.
type Store struct {
	txMu sync.Mutex // one unit of work at a time
	mu   sync.RWMutex

	accounts   map[string]domain.Account
	entries    []domain.LedgerEntry
	entryIndex map[string]int
	reversals  map[string]string // original entry id -> reversing entry id
	sales      map[string]domain.Sale
	orders     map[string]domain.PurchaseOrder
	holders    map[holderKey]domain.DebtHolder
	seq        int64

	failNextCommit error
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		accounts:   make(map[string]domain.Account),
		entryIndex: make(map[string]int),
		reversals:  make(map[string]string),
		sales:      make(map[string]domain.Sale),
		orders:     make(map[string]domain.PurchaseOrder),
		holders:    make(map[holderKey]domain.DebtHolder),
	}
}

var _ portsrepo.TreasuryStore = (*Store)(nil)

// FailNextCommit makes the next commit fail with err after the unit of work ran,
// leaving committed state untouched. Used to exercise rollback paths.
func (s *Store) FailNextCommit(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failNextCommit = err
}

// OverwriteAccount replaces a stored projection without touching the ledger,
// as a crash between ledger append and projection update would.
func (s *Store) OverwriteAccount(acc domain.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[acc.Key] = acc
}

// Ping always succeeds.
func (s *Store) Ping(context.Context) error { return nil }

// SeedAccounts implements AccountWriter.
func (s *Store) SeedAccounts(_ context.Context, accounts []domain.Account) (int, error) {
	s.txMu.Lock()
	defer s.txMu.Unlock()
	s.mu.Lock()
	defer s.mu.Unlock()

	created := 0
	for _, acc := range accounts {
		if _, exists := s.accounts[acc.Key]; exists {
			continue
		}
		s.accounts[acc.Key] = acc
		created++
	}
	return created, nil
}

// FindAccountByKey implements AccountReader.
func (s *Store) FindAccountByKey(_ context.Context, key string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	acc, ok := s.accounts[key]
	if !ok {
		return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, key)
	}
	return &acc, nil
}

// ListAccounts implements AccountReader.
func (s *Store) ListAccounts(context.Context) ([]domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Account, 0, len(s.accounts))
	for _, acc := range s.accounts {
		out = append(out, acc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

// FindEntryByID implements LedgerReader.
func (s *Store) FindEntryByID(_ context.Context, entryID string) (*domain.LedgerEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.entryIndex[entryID]
	if !ok {
		return nil, fmt.Errorf("%w: ledger entry %s", apperrors.ErrNotFound, entryID)
	}
	e := s.entries[i]
	return &e, nil
}

// ListEntriesByAccount implements LedgerReader.
func (s *Store) ListEntriesByAccount(_ context.Context, accountKey string, filter portsrepo.EntryFilter) ([]domain.LedgerEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.LedgerEntry, 0)
	for _, e := range s.entries {
		if e.AccountKey != accountKey || e.Seq <= filter.AfterSeq {
			continue
		}
		if filter.From != nil && e.CreatedAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && !e.CreatedAt.Before(*filter.To) {
			continue
		}
		out = append(out, e)
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out, nil
}

// ListEntries implements LedgerReader.
func (s *Store) ListEntries(_ context.Context, afterSeq int64, limit int) ([]domain.LedgerEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	start := sort.Search(len(s.entries), func(i int) bool { return s.entries[i].Seq > afterSeq })
	end := len(s.entries)
	if limit > 0 && start+limit < end {
		end = start + limit
	}
	out := make([]domain.LedgerEntry, end-start)
	copy(out, s.entries[start:end])
	return out, nil
}

// FindSaleByID implements EntityReader.
func (s *Store) FindSaleByID(_ context.Context, saleID string) (*domain.Sale, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sale, ok := s.sales[saleID]
	if !ok {
		return nil, fmt.Errorf("%w: sale %s", apperrors.ErrNotFound, saleID)
	}
	return &sale, nil
}

// FindPurchaseOrderByID implements EntityReader.
func (s *Store) FindPurchaseOrderByID(_ context.Context, orderID string) (*domain.PurchaseOrder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	order, ok := s.orders[orderID]
	if !ok {
		return nil, fmt.Errorf("%w: purchase order %s", apperrors.ErrNotFound, orderID)
	}
	return &order, nil
}

// ListSales implements EntityReader.
func (s *Store) ListSales(context.Context) ([]domain.Sale, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Sale, 0, len(s.sales))
	for _, sale := range s.sales {
		out = append(out, sale)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SaleID < out[j].SaleID })
	return out, nil
}

// ListPurchaseOrders implements EntityReader.
func (s *Store) ListPurchaseOrders(context.Context) ([]domain.PurchaseOrder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.PurchaseOrder, 0, len(s.orders))
	for _, order := range s.orders {
		out = append(out, order)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderID < out[j].OrderID })
	return out, nil
}

// FindDebtHolder implements DebtHolderReader.
func (s *Store) FindDebtHolder(_ context.Context, holderType domain.HolderType, holderID string) (*domain.DebtHolder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	h, ok := s.holders[holderKey{holderType, holderID}]
	if !ok {
		return nil, fmt.Errorf("%w: %s %s", apperrors.ErrNotFound, holderType, holderID)
	}
	return &h, nil
}

// ListDebtHolders implements DebtHolderReader.
func (s *Store) ListDebtHolders(context.Context) ([]domain.DebtHolder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.DebtHolder, 0, len(s.holders))
	for _, h := range s.holders {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LockKey() < out[j].LockKey() })
	return out, nil
}

// WithinTx implements TransactionManager.
func (s *Store) WithinTx(ctx context.Context, fn portsrepo.TxFunc) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	tx := newMemTx(s)
	if err := fn(ctx, tx); err != nil {
		return err
	}
	return s.commit(tx)
}

func (s *Store) commit(tx *memTx) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.failNextCommit; err != nil {
		s.failNextCommit = nil
		return apperrors.NewAppError(apperrors.KindStorageUnavailable, "failed to commit transaction", err)
	}

	for key, acc := range tx.accounts {
		s.accounts[key] = acc
	}
	for _, e := range tx.entries {
		s.entryIndex[e.EntryID] = len(s.entries)
		s.entries = append(s.entries, e)
		if e.ReversesEntryID != nil {
			s.reversals[*e.ReversesEntryID] = e.EntryID
		}
	}
	s.seq = tx.seq
	for id, sale := range tx.sales {
		s.sales[id] = sale
	}
	for id, order := range tx.orders {
		s.orders[id] = order
	}
	for k, h := range tx.holders {
		s.holders[k] = h
	}
	return nil
}
