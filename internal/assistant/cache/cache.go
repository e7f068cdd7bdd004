package cache

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"luna-assistant/internal/model"
)

// entry wraps a cached result with its own expiry. The LRU's TTL is the
// ceiling; a shorter per-entry TTL is enforced on Get.
type entry struct {
	value     model.LocalTaskResult
	createdAt time.Time
	expiry    time.Time
}

// Cache memoizes LocalTaskResults by signature, bounded in size (LRU
// eviction) and time (TTL). Entries are never returned stale. The
// underlying expirable LRU is safe for concurrent use.
type Cache struct {
	lru        *expirable.LRU[string, entry]
	defaultTTL time.Duration
	now        func() time.Time
}

// New creates a cache holding at most size entries, each for at most
// defaultTTL.
func New(size int, defaultTTL time.Duration) *Cache {
	return &Cache{
		lru:        expirable.NewLRU[string, entry](size, nil, defaultTTL),
		defaultTTL: defaultTTL,
		now:        time.Now,
	}
}

// Get returns the cached result for a signature, if present and fresh.
// An expired or malformed entry is discarded and reported as a miss.
func (c *Cache) Get(sig string) (model.LocalTaskResult, bool) {
	e, ok := c.lru.Get(sig)
	if !ok {
		return model.LocalTaskResult{}, false
	}

	if e.value.Type == "" || !c.now().Before(e.expiry) {
		c.lru.Remove(sig)
		return model.LocalTaskResult{}, false
	}

	return e.value, true
}

// Put stores a result under the signature. Non-cacheable results are
// rejected unconditionally. A non-positive or too-large ttl is clamped
// to the cache default, which is also the LRU ceiling.
func (c *Cache) Put(sig string, result model.LocalTaskResult, ttl time.Duration) {
	if !result.Cacheable {
		return
	}

	if ttl <= 0 || ttl > c.defaultTTL {
		ttl = c.defaultTTL
	}

	now := c.now()
	c.lru.Add(sig, entry{
		value:     result,
		createdAt: now,
		expiry:    now.Add(ttl),
	})
}

// Clear drops every entry.
func (c *Cache) Clear() {
	c.lru.Purge()
}

// Len returns the number of live entries.
func (c *Cache) Len() int {
	return c.lru.Len()
}
