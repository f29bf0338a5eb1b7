package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/SscSPs/treasury_ledger/internal/apperrors"
	"github.com/SscSPs/treasury_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/treasury_ledger/internal/core/ports/repositories"
)

// memTx stages writes on top of the committed state. Reads see staged values first.
type memTx struct {
	store    *Store
	accounts map[string]domain.Account
	entries  []domain.LedgerEntry
	sales    map[string]domain.Sale
	orders   map[string]domain.PurchaseOrder
	holders  map[holderKey]domain.DebtHolder
	seq      int64
}

var _ portsrepo.TreasuryTx = (*memTx)(nil)

func newMemTx(s *Store) *memTx {
	s.mu.RLock()
	seq := s.seq
	s.mu.RUnlock()
	return &memTx{
		store:    s,
		accounts: make(map[string]domain.Account),
		sales:    make(map[string]domain.Sale),
		orders:   make(map[string]domain.PurchaseOrder),
		holders:  make(map[holderKey]domain.DebtHolder),
		seq:      seq,
	}
}

func (t *memTx) account(key string) (domain.Account, bool) {
	if acc, ok := t.accounts[key]; ok {
		return acc, true
	}
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	acc, ok := t.store.accounts[key]
	return acc, ok
}

// LockAccounts implements AccountTxSupport. Units of work are already serialized,
// so locking reduces to a consistent read.
func (t *memTx) LockAccounts(_ context.Context, keys []string) (map[string]domain.Account, error) {
	sorted := append([]string(nil), keys...)
	sort.Strings(sorted)
	out := make(map[string]domain.Account, len(sorted))
	for _, key := range sorted {
		acc, ok := t.account(key)
		if !ok {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrUnknownAccount, key)
		}
		out[key] = acc
	}
	return out, nil
}

// SaveAccounts implements AccountTxSupport.
func (t *memTx) SaveAccounts(_ context.Context, accounts []domain.Account) error {
	for _, acc := range accounts {
		current, ok := t.account(acc.Key)
		if !ok {
			return fmt.Errorf("%w: %s", apperrors.ErrUnknownAccount, acc.Key)
		}
		if current.Version != acc.Version {
			return apperrors.Newf(apperrors.KindContention, "account %s was modified concurrently", acc.Key)
		}
		acc.Version++
		t.accounts[acc.Key] = acc
	}
	return nil
}

// AppendEntries implements LedgerTxSupport.
func (t *memTx) AppendEntries(_ context.Context, entries []domain.LedgerEntry) ([]domain.LedgerEntry, error) {
	out := make([]domain.LedgerEntry, len(entries))
	for i, e := range entries {
		t.seq++
		e.Seq = t.seq
		out[i] = e
	}
	t.entries = append(t.entries, out...)
	return out, nil
}

// FindEntriesByCorrelationID implements LedgerTxSupport.
func (t *memTx) FindEntriesByCorrelationID(_ context.Context, correlationID string) ([]domain.LedgerEntry, error) {
	out := make([]domain.LedgerEntry, 0, 2)
	t.store.mu.RLock()
	for _, e := range t.store.entries {
		if e.CorrelationID == correlationID {
			out = append(out, e)
		}
	}
	t.store.mu.RUnlock()
	for _, e := range t.entries {
		if e.CorrelationID == correlationID {
			out = append(out, e)
		}
	}
	return out, nil
}

// HasReversal implements LedgerTxSupport.
func (t *memTx) HasReversal(_ context.Context, entryID string) (bool, error) {
	for _, e := range t.entries {
		if e.ReversesEntryID != nil && *e.ReversesEntryID == entryID {
			return true, nil
		}
	}
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	_, ok := t.store.reversals[entryID]
	return ok, nil
}

func (t *memTx) sale(id string) (domain.Sale, bool) {
	if sale, ok := t.sales[id]; ok {
		return sale, true
	}
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	sale, ok := t.store.sales[id]
	return sale, ok
}

func (t *memTx) order(id string) (domain.PurchaseOrder, bool) {
	if order, ok := t.orders[id]; ok {
		return order, true
	}
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	order, ok := t.store.orders[id]
	return order, ok
}

func (t *memTx) holder(k holderKey) (domain.DebtHolder, bool) {
	if h, ok := t.holders[k]; ok {
		return h, true
	}
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	h, ok := t.store.holders[k]
	return h, ok
}

// LockSale implements EntityTxSupport.
func (t *memTx) LockSale(_ context.Context, saleID string) (*domain.Sale, error) {
	sale, ok := t.sale(saleID)
	if !ok {
		return nil, fmt.Errorf("%w: sale %s", apperrors.ErrNotFound, saleID)
	}
	return &sale, nil
}

// LockPurchaseOrder implements EntityTxSupport.
func (t *memTx) LockPurchaseOrder(_ context.Context, orderID string) (*domain.PurchaseOrder, error) {
	order, ok := t.order(orderID)
	if !ok {
		return nil, fmt.Errorf("%w: purchase order %s", apperrors.ErrNotFound, orderID)
	}
	return &order, nil
}

// InsertSale implements EntityTxSupport.
func (t *memTx) InsertSale(_ context.Context, sale domain.Sale) error {
	if _, exists := t.sale(sale.SaleID); exists {
		return fmt.Errorf("%w: sale %s", apperrors.ErrDuplicate, sale.SaleID)
	}
	sale.Version = 1
	t.sales[sale.SaleID] = sale
	return nil
}

// InsertPurchaseOrder implements EntityTxSupport.
func (t *memTx) InsertPurchaseOrder(_ context.Context, order domain.PurchaseOrder) error {
	if _, exists := t.order(order.OrderID); exists {
		return fmt.Errorf("%w: purchase order %s", apperrors.ErrDuplicate, order.OrderID)
	}
	order.Version = 1
	t.orders[order.OrderID] = order
	return nil
}

// UpdateSale implements EntityTxSupport.
func (t *memTx) UpdateSale(_ context.Context, sale domain.Sale) error {
	current, ok := t.sale(sale.SaleID)
	if !ok {
		return fmt.Errorf("%w: sale %s", apperrors.ErrNotFound, sale.SaleID)
	}
	if current.Version != sale.Version {
		return apperrors.Newf(apperrors.KindContention, "sale %s was modified concurrently", sale.SaleID)
	}
	sale.Version++
	t.sales[sale.SaleID] = sale
	return nil
}

// UpdatePurchaseOrder implements EntityTxSupport.
func (t *memTx) UpdatePurchaseOrder(_ context.Context, order domain.PurchaseOrder) error {
	current, ok := t.order(order.OrderID)
	if !ok {
		return fmt.Errorf("%w: purchase order %s", apperrors.ErrNotFound, order.OrderID)
	}
	if current.Version != order.Version {
		return apperrors.Newf(apperrors.KindContention, "purchase order %s was modified concurrently", order.OrderID)
	}
	order.Version++
	t.orders[order.OrderID] = order
	return nil
}

// LockDebtHolder implements DebtHolderTxSupport.
func (t *memTx) LockDebtHolder(_ context.Context, holderType domain.HolderType, holderID string) (*domain.DebtHolder, error) {
	h, ok := t.holder(holderKey{holderType, holderID})
	if !ok {
		return nil, fmt.Errorf("%w: %s %s", apperrors.ErrNotFound, holderType, holderID)
	}
	return &h, nil
}

// SaveDebtHolder implements DebtHolderTxSupport.
func (t *memTx) SaveDebtHolder(_ context.Context, holder domain.DebtHolder) error {
	k := holderKey{holder.HolderType, holder.HolderID}
	current, exists := t.holder(k)
	switch {
	case holder.Version == 0 && exists:
		return fmt.Errorf("%w: %s %s", apperrors.ErrDuplicate, holder.HolderType, holder.HolderID)
	case holder.Version != 0 && (!exists || current.Version != holder.Version):
		return apperrors.Newf(apperrors.KindContention, "%s %s was modified concurrently", holder.HolderType, holder.HolderID)
	}
	holder.Version++
	t.holders[k] = holder
	return nil
}
