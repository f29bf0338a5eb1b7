package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryIdempotencyStore_Reserve(t *testing.T) {
	store := NewMemoryIdempotencyStore()
	ctx := context.Background()

	t.Run("first reservation wins", func(t *testing.T) {
		ok, err := store.Reserve(ctx, "k1", time.Hour)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = store.Reserve(ctx, "k1", time.Hour)
		require.NoError(t, err)
		assert.False(t, ok, "key is still held")
	})

	t.Run("release frees the key", func(t *testing.T) {
		_, err := store.Reserve(ctx, "k2", time.Hour)
		require.NoError(t, err)
		require.NoError(t, store.Release(ctx, "k2"))

		ok, err := store.Reserve(ctx, "k2", time.Hour)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("expired keys can be reserved again", func(t *testing.T) {
		now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		store.now = func() time.Time { return now }

		ok, _ := store.Reserve(ctx, "k3", time.Minute)
		assert.True(t, ok)

		now = now.Add(2 * time.Minute)
		ok, _ = store.Reserve(ctx, "k3", time.Minute)
		assert.True(t, ok, "expired key should be reservable")
	})
}

func TestMemoryIdempotencyStore_ConcurrentReserve(t *testing.T) {
	store := NewMemoryIdempotencyStore()
	var winners int32
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _ := store.Reserve(context.Background(), "same", time.Hour); ok {
				atomic.AddInt32(&winners, 1)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), winners)
}
