package cache

import (
	"context"
	"sync"
	"time"

	portsrepo "github.com/SscSPs/treasury_ledger/internal/core/ports/repositories"
)

// MemoryIdempotencyStore keeps request keys in process memory. It suits a
// single instance and tests; expired keys are dropped lazily on Reserve.
type MemoryIdempotencyStore struct {
	mu      sync.Mutex
	entries map[string]time.Time // key -> expiry
	now     func() time.Time
}

// NewMemoryIdempotencyStore creates an empty store.
func NewMemoryIdempotencyStore() *MemoryIdempotencyStore {
	return &MemoryIdempotencyStore{entries: make(map[string]time.Time), now: time.Now}
}

// Reserve claims key for ttl. It returns false while an unexpired claim exists.
func (s *MemoryIdempotencyStore) Reserve(_ context.Context, key string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if expiresAt, ok := s.entries[key]; ok && now.Before(expiresAt) {
		return false, nil
	}
	s.entries[key] = now.Add(ttl)
	s.sweep(now)
	return true, nil
}

// Release drops a claim.
func (s *MemoryIdempotencyStore) Release(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}

func (s *MemoryIdempotencyStore) sweep(now time.Time) {
	for key, expiresAt := range s.entries {
		if !now.Before(expiresAt) {
			delete(s.entries, key)
		}
	}
}

var _ portsrepo.IdempotencyStore = (*MemoryIdempotencyStore)(nil)
