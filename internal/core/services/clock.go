package services

import (
	"sync"
	"time"
)

// monotonicClock never hands out a timestamp earlier than one it already
// returned. Ties are broken by advancing a microsecond, the precision the
// store keeps.
type monotonicClock struct {
	mu   sync.Mutex
	last time.Time
	now  func() time.Time
}

func newMonotonicClock(now func() time.Time) *monotonicClock {
	if now == nil {
		now = time.Now
	}
	return &monotonicClock{now: now}
}

// Next returns the next timestamp in UTC.
func (c *monotonicClock) Next() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := c.now().UTC().Truncate(time.Microsecond)
	if !t.After(c.last) {
		t = c.last.Add(time.Microsecond)
	}
	c.last = t
	return t
}
