// Package imagecache memoizes resolved image URL lists for the lifetime of
// the process. The default backend is an unbounded in-memory map; a Redis
// backend can be swapped in for multi-instance deployments.
package imagecache

import "sync"

type Cache interface {
	Get(key string) ([]string, bool)
	Set(key string, urls []string)
}

type MemoryCache struct {
	mu   sync.RWMutex
	data map[string][]string
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		data: make(map[string][]string),
	}
}

func (c *MemoryCache) Get(key string) ([]string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	urls, ok := c.data[key]
	if !ok {
		return nil, false
	}
	// Copy so callers cannot mutate the cached slice.
	out := make([]string, len(urls))
	copy(out, urls)
	return out, true
}

func (c *MemoryCache) Set(key string, urls []string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	stored := make([]string, len(urls))
	copy(stored, urls)
	c.data[key] = stored
}
