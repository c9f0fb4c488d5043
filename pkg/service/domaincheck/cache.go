package domaincheck

import (
	"sync"
	"time"
)

// DefaultTTL is how long a cached availability result stays valid
const DefaultTTL = 5 * time.Minute

type cacheEntry struct {
	value    bool
	cachedAt time.Time
}

// Cache is a TTL cache mapping a normalized domain to its availability.
// Expired entries are purged lazily on read so stale data never accumulates.
type Cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]cacheEntry
	now     func() time.Time
}

// NewCache creates a cache with the given TTL. A non-positive TTL falls
// back to DefaultTTL.
func NewCache(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

// Get returns the cached availability for the domain. An entry older than
// the TTL behaves as absent and is removed.
func (c *Cache) Get(domain string) (bool, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[domain]
	if !ok {
		return false, false
	}
	if c.now().Sub(entry.cachedAt) >= c.ttl {
		delete(c.entries, domain)
		return false, false
	}
	return entry.value, true
}

// Set stores the availability result for the domain
func (c *Cache) Set(domain string, available bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[domain] = cacheEntry{value: available, cachedAt: c.now()}
}

// Clear removes all cached entries
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]cacheEntry)
}

// Len returns the number of entries currently held, including any that
// have expired but not yet been purged.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}
