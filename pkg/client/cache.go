package client

import (
	"net/url"
	"sync"
)

// listCache memoises list responses per resource family. Keys combine the
// family name with the encoded query, so different pages and filters are
// distinct entries. Mutations invalidate a whole family at once.
type listCache struct {
	mu      sync.Mutex
	entries map[string]any
}

func newListCache() *listCache {
	return &listCache{entries: make(map[string]any)}
}

func cacheKey(family string, query url.Values) string {
	return family + "?" + query.Encode()
}

func (c *listCache) get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[key]
	return v, ok
}

func (c *listCache) put(key string, v any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = v
}

// invalidate drops every entry belonging to family.
func (c *listCache) invalidate(family string) {
	prefix := family + "?"
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.entries {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			delete(c.entries, k)
		}
	}
}
