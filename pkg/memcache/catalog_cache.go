// pkg/memcache/catalog_cache.go
package memcache

import (
	"sync"

	"essentia/internal/recommender"
)

type CatalogStore interface {
	// Snapshot returns a copy of every cached perfume. Safe for concurrent
	// readers; the returned slice is owned by the caller.
	Snapshot() []recommender.Perfume

	// ReplaceAll swaps the whole cache for a fresh full load.
	ReplaceAll(perfumes []recommender.Perfume, syncedAt int64)

	// MergeChanged upserts incrementally synced rows without touching the
	// rest of the cache.
	MergeChanged(perfumes []recommender.Perfume, syncedAt int64)

	Get(key string) (recommender.Perfume, bool)
	LastSync() int64
	Len() int
}

type CatalogCache struct {
	mu       sync.RWMutex
	data     map[string]recommender.Perfume
	lastSync int64
}

func NewCatalogCache() *CatalogCache {
	return &CatalogCache{
		data: make(map[string]recommender.Perfume),
	}
}

func (c *CatalogCache) Snapshot() []recommender.Perfume {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]recommender.Perfume, 0, len(c.data))
	for _, p := range c.data {
		out = append(out, p)
	}
	return out
}

func (c *CatalogCache) ReplaceAll(perfumes []recommender.Perfume, syncedAt int64) {
	fresh := make(map[string]recommender.Perfume, len(perfumes))
	for _, p := range perfumes {
		fresh[p.Key] = p
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = fresh
	c.lastSync = syncedAt
}

func (c *CatalogCache) MergeChanged(perfumes []recommender.Perfume, syncedAt int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, p := range perfumes {
		c.data[p.Key] = p
	}
	if syncedAt > c.lastSync {
		c.lastSync = syncedAt
	}
}

func (c *CatalogCache) Get(key string) (recommender.Perfume, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p, ok := c.data[key]
	return p, ok
}

func (c *CatalogCache) LastSync() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastSync
}

func (c *CatalogCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}
