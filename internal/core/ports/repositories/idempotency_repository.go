package repositories

import (
	"context"
	"time"
)

// IdempotencyStore reserves request keys so a retried command is applied once.
type IdempotencyStore interface {
	// Reserve claims key for ttl. It returns false when the key is already held.
	Reserve(ctx context.Context, key string, ttl time.Duration) (bool, error)

	// Release frees a key whose operation failed, so the caller may retry.
	Release(ctx context.Context, key string) error
}
