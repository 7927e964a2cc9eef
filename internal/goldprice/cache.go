package goldprice

import (
	"sync"
	"time"
)

// SpotCache is a single-slot, time-windowed cache for the gold spot price.
// It starts empty, is populated on the first successful fetch, and is only
// invalidated by expiry. The clock is injected so tests need no real timers.
type SpotCache struct {
	mu  sync.Mutex
	now func() time.Time
	ttl time.Duration

	value     float64
	expiresAt time.Time
	set       bool
}

// NewSpotCache returns an empty cache. A nil now falls back to time.Now.
func NewSpotCache(ttl time.Duration, now func() time.Time) *SpotCache {
	if now == nil {
		now = time.Now
	}
	return &SpotCache{now: now, ttl: ttl}
}

// Get returns the cached price while its expiry is still in the future.
func (c *SpotCache) Get() (float64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.set || !c.now().Before(c.expiresAt) {
		return 0, false
	}
	return c.value, true
}

// Put overwrites the slot with v and a fresh expiry window.
func (c *SpotCache) Put(v float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = v
	c.expiresAt = c.now().Add(c.ttl)
	c.set = true
}
