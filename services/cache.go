package services

import (
	"sync"
	"time"
)

type cacheEntry[T any] struct {
	data      T
	timestamp time.Time
	expiresAt time.Time
}

// ExpiringCache is a keyed store with a fixed per-entry TTL. Expiry is
// discovered lazily: an expired entry is deleted on the read that finds it,
// never by a background sweep. There is no size limit; the key space here is
// bounded by category ids and user queries.
type ExpiringCache[T any] struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]cacheEntry[T]

	// now is replaceable in tests to control expiry.
	now func() time.Time
}

func NewExpiringCache[T any](ttl time.Duration) *ExpiringCache[T] {
	return &ExpiringCache[T]{
		ttl:     ttl,
		entries: make(map[string]cacheEntry[T]),
		now:     time.Now,
	}
}

// Get returns the cached value for key, or false if the key is absent or its
// entry has expired. An expired entry is removed before returning.
func (c *ExpiringCache[T]) Get(key string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		var zero T
		return zero, false
	}
	if !c.now().Before(entry.expiresAt) {
		delete(c.entries, key)
		var zero T
		return zero, false
	}
	return entry.data, true
}

// Set stores value under key, overwriting any existing entry and resetting
// its TTL.
func (c *ExpiringCache[T]) Set(key string, value T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	c.entries[key] = cacheEntry[T]{
		data:      value,
		timestamp: now,
		expiresAt: now.Add(c.ttl),
	}
}

// Len reports the number of stored entries, expired or not.
func (c *ExpiringCache[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
