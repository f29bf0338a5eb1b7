package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/treasury_ledger/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyLocker_SerializesSharedKeys(t *testing.T) {
	l := newKeyLocker(time.Second)
	var (
		mu      sync.Mutex
		inside  int
		maxSeen int
		wg      sync.WaitGroup
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		keys := []string{"account:a", "account:b"}
		if i%2 == 0 {
			keys = []string{"account:b", "account:a"}
		}
		go func() {
			defer wg.Done()
			release, err := l.Acquire(context.Background(), keys...)
			if !assert.NoError(t, err) {
				return
			}
			mu.Lock()
			inside++
			maxSeen = max(maxSeen, inside)
			mu.Unlock()
			time.Sleep(time.Millisecond)
			mu.Lock()
			inside--
			mu.Unlock()
			release()
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, maxSeen)
	assert.Empty(t, l.entries, "idle keys are dropped")
}

func TestKeyLocker_TimeoutIsContention(t *testing.T) {
	l := newKeyLocker(20 * time.Millisecond)
	release, err := l.Acquire(context.Background(), "sale:1")
	require.NoError(t, err)

	_, err = l.Acquire(context.Background(), "holder:client:c", "sale:1")
	assert.ErrorIs(t, err, apperrors.ErrContention)

	release()
	release() // idempotent

	again, err := l.Acquire(context.Background(), "sale:1", "holder:client:c")
	require.NoError(t, err)
	again()
}

func TestKeyLocker_ExclusiveWaitsForOperations(t *testing.T) {
	l := newKeyLocker(30 * time.Millisecond)
	release, err := l.Acquire(context.Background(), "account:a")
	require.NoError(t, err)

	_, err = l.AcquireExclusive(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrContention)
	release()

	exclusive, err := l.AcquireExclusive(context.Background())
	require.NoError(t, err)
	_, err = l.Acquire(context.Background(), "account:b")
	assert.ErrorIs(t, err, apperrors.ErrContention, "operations wait while reconciliation runs")
	exclusive()

	release, err = l.Acquire(context.Background(), "account:b")
	require.NoError(t, err)
	release()
}

func TestSortedUnique(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, sortedUnique([]string{"c", "a", "", "b", "a"}))
}

func TestMonotonicClock(t *testing.T) {
	fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	times := []time.Time{fixed, fixed, fixed.Add(-time.Hour), fixed.Add(time.Second)}
	i := 0
	c := newMonotonicClock(func() time.Time {
		t := times[i]
		i++
		return t
	})

	first := c.Next()
	second := c.Next()
	third := c.Next()
	fourth := c.Next()

	assert.Equal(t, fixed, first)
	assert.Equal(t, fixed.Add(time.Microsecond), second)
	assert.Equal(t, fixed.Add(2*time.Microsecond), third, "clock never goes backwards")
	assert.Equal(t, fixed.Add(time.Second), fourth)
}
