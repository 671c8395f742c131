// internals/helpers/cache/cache.go
package cache

import (
	"strings"
	"sync"
	"time"
)

// Cache is a small read-through cache for hot list endpoints. Invalidation is
// explicit: every mutation name registers the cache keys it dirties, and
// controllers call Invalidate with the mutation name after a successful write.
// The cache object is built in the route setup and handed to the controllers
// that use it; there is no package-level instance.
type Cache struct {
	mu         sync.Mutex
	ttl        time.Duration
	entries    map[string]entry
	dependents map[string][]string // mutation name -> cache keys it dirties
}

type entry struct {
	value     interface{}
	expiresAt time.Time
}

func New(ttl time.Duration) *Cache {
	return &Cache{
		ttl:        ttl,
		entries:    make(map[string]entry),
		dependents: make(map[string][]string),
	}
}

// Declare registers the cache keys a named mutation invalidates.
func (c *Cache) Declare(mutation string, keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dependents[mutation] = append(c.dependents[mutation], keys...)
}

// Get returns the cached value for key when present and fresh.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok || time.Now().After(e.expiresAt) {
		delete(c.entries, key)
		return nil, false
	}
	return e.value, true
}

// Set stores value under key for the cache TTL.
func (c *Cache) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{value: value, expiresAt: time.Now().Add(c.ttl)}
}

// Invalidate drops every cache key the named mutation declared. A declared
// key ending in "*" drops all entries sharing the prefix, which covers
// per-filter variants of a list key. Unknown mutation names are a no-op,
// not an error.
func (c *Cache) Invalidate(mutation string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range c.dependents[mutation] {
		if strings.HasSuffix(k, "*") {
			prefix := strings.TrimSuffix(k, "*")
			for key := range c.entries {
				if strings.HasPrefix(key, prefix) {
					delete(c.entries, key)
				}
			}
			continue
		}
		delete(c.entries, k)
	}
}

// InvalidateKey drops a single key directly (used for per-id entries).
func (c *Cache) InvalidateKey(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}
