package memory

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultMaxEntries is the capacity of a cache built without WithMaxEntries.
const DefaultMaxEntries = 10000

// Cache implements ports.VerdictCache in memory.
// It holds at most a fixed number of verdicts and evicts the least recently
// used one when full. Safe for concurrent use.
type Cache struct {
	maxEntries int
	data       *lru.Cache[string, bool]
}

// Option configures a Cache.
type Option func(*Cache)

// WithMaxEntries bounds the number of cached verdicts. Values below 1 keep
// the default.
func WithMaxEntries(n int) Option {
	return func(c *Cache) {
		if n > 0 {
			c.maxEntries = n
		}
	}
}

// NewCache creates a new in-memory verdict cache.
func NewCache(opts ...Option) *Cache {
	c := &Cache{maxEntries: DefaultMaxEntries}
	for _, opt := range opts {
		opt(c)
	}
	// lru.New only fails on a non-positive size, which WithMaxEntries rules out.
	data, err := lru.New[string, bool](c.maxEntries)
	if err != nil {
		panic(err)
	}
	c.data = data
	return c
}

// Get returns the verdict stored under key.
func (c *Cache) Get(ctx context.Context, key string) (bool, bool, error) {
	valid, ok := c.data.Get(key)
	return valid, ok, nil
}

// Put stores a verdict under key.
func (c *Cache) Put(ctx context.Context, key string, valid bool) error {
	c.data.Add(key, valid)
	return nil
}

// Len returns the number of cached verdicts.
func (c *Cache) Len() int {
	return c.data.Len()
}

// MaxEntries returns the capacity of the cache.
func (c *Cache) MaxEntries() int {
	return c.maxEntries
}
