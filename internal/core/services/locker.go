package services

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/SscSPs/treasury_ledger/internal/apperrors"
	"golang.org/x/sync/semaphore"
)

// gateCapacity is the weight of the shared gate. Operations hold one unit;
// reconciliation takes all of them.
const gateCapacity = 1 << 20

// keyLocker hands out exclusive per-key locks. Keys are always taken in
// lexicographic order, so two operations sharing keys cannot deadlock, and each
// acquisition is bounded by a timeout.
type keyLocker struct {
	mu      sync.Mutex
	entries map[string]*lockEntry
	gate    *semaphore.Weighted
	timeout time.Duration
}

type lockEntry struct {
	sem  *semaphore.Weighted
	refs int
}

func newKeyLocker(timeout time.Duration) *keyLocker {
	return &keyLocker{
		entries: make(map[string]*lockEntry),
		gate:    semaphore.NewWeighted(gateCapacity),
		timeout: timeout,
	}
}

func (l *keyLocker) ref(key string) *semaphore.Weighted {
	l.mu.Lock()
	defer l.mu.Unlock()
	e, ok := l.entries[key]
	if !ok {
		e = &lockEntry{sem: semaphore.NewWeighted(1)}
		l.entries[key] = e
	}
	e.refs++
	return e.sem
}

func (l *keyLocker) unref(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e := l.entries[key]
	e.refs--
	if e.refs == 0 {
		delete(l.entries, key)
	}
}

// Acquire locks every key and returns a release func. The wait ignores caller
// cancellation: once an operation starts taking locks it runs to a definite
// outcome, bounded only by the locker's timeout.
func (l *keyLocker) Acquire(ctx context.Context, keys ...string) (func(), error) {
	ordered := sortedUnique(keys)

	waitCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), l.timeout)
	defer cancel()

	if err := l.gate.Acquire(waitCtx, 1); err != nil {
		return nil, fmt.Errorf("%w: timed out after %s waiting for reconciliation to finish", apperrors.ErrContention, l.timeout)
	}

	held := make([]string, 0, len(ordered))
	sems := make([]*semaphore.Weighted, 0, len(ordered))
	release := func() {
		for i := len(held) - 1; i >= 0; i-- {
			sems[i].Release(1)
			l.unref(held[i])
		}
		l.gate.Release(1)
	}

	for _, key := range ordered {
		sem := l.ref(key)
		if err := sem.Acquire(waitCtx, 1); err != nil {
			l.unref(key)
			release()
			return nil, fmt.Errorf("%w: timed out after %s waiting for %s", apperrors.ErrContention, l.timeout, key)
		}
		held = append(held, key)
		sems = append(sems, sem)
	}

	var once sync.Once
	return func() { once.Do(release) }, nil
}

// AcquireExclusive waits until no operation holds locks and blocks new ones
// until the returned func is called.
func (l *keyLocker) AcquireExclusive(ctx context.Context) (func(), error) {
	waitCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), l.timeout)
	defer cancel()
	if err := l.gate.Acquire(waitCtx, gateCapacity); err != nil {
		return nil, fmt.Errorf("%w: timed out after %s waiting for in-flight operations", apperrors.ErrContention, l.timeout)
	}
	var once sync.Once
	return func() { once.Do(func() { l.gate.Release(gateCapacity) }) }, nil
}

func sortedUnique(keys []string) []string {
	seen := make(map[string]struct{}, len(keys))
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if k == "" {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func accountLockKey(key string) string { return "account:" + key }
func saleLockKey(id string) string     { return "sale:" + id }
func orderLockKey(id string) string    { return "purchase_order:" + id }
