package wpsync

import (
	"sync"
	"time"
)

// CategoryCache maps a case-normalized category name to the remote term
// id. It is a pure lookup optimization: a miss is always recoverable via
// a live lookup, so implementations may drop entries freely. Writes are
// idempotent upserts keyed by name, safe under concurrent resolvers.
//
// There is no automatic expiry. A category renamed or deleted remotely
// without this system's knowledge leaves a stale hit until the entry is
// explicitly invalidated; that window is an accepted limitation.
type CategoryCache interface {
	Get(name string) (int64, bool)
	Put(name string, id int64)
	Invalidate(name string)
}

type memEntry struct {
	id        int64
	createdAt time.Time
}

// MemoryCache is the in-process CategoryCache. Tests inject a fresh
// instance per case; production wiring uses the sqlite-backed repo.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memEntry
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]memEntry)}
}

func (c *MemoryCache) Get(name string) (int64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[name]
	return e.id, ok
}

func (c *MemoryCache) Put(name string, id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[name] = memEntry{id: id, createdAt: time.Now()}
}

func (c *MemoryCache) Invalidate(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, name)
}
