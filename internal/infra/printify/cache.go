package printify

import (
	"sync"
	"time"
)

// DefaultCacheTTL bounds how stale catalog data may be served.
const DefaultCacheTTL = 1 * time.Hour

type cacheEntry struct {
	data any
	at   time.Time
}

// Cache is a time-bounded memoization layer for read-mostly catalog data.
// Stale entries are left in place until overwritten; memory is bounded only
// by distinct keys, which is acceptable for the small catalog surface.
type Cache struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.RWMutex
	entries map[string]cacheEntry
}

// NewCache creates a cache with the given TTL (DefaultCacheTTL if zero).
func NewCache(ttl time.Duration) *Cache {
	if ttl == 0 {
		ttl = DefaultCacheTTL
	}
	return &Cache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]cacheEntry),
	}
}

// Get returns the stored value if it is within TTL.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	if !ok || c.now().Sub(entry.at) >= c.ttl {
		return nil, false
	}
	return entry.data, true
}

// Put stores a value, overwriting any existing entry and refreshing its
// timestamp. Last writer wins under concurrent population.
func (c *Cache) Put(key string, data any) {
	c.mu.Lock()
	c.entries[key] = cacheEntry{data: data, at: c.now()}
	c.mu.Unlock()
}
