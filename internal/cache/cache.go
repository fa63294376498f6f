// Package cache keeps recently read public lists in memory so repeated page
// loads do not re-sort the store on every request.
package cache

import (
	"sync"
	"time"

	"github.com/isdelr/portfolio-be/internal/metrics"
	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
)

// Keys for the cached lists.
const (
	KeyProjects = "projects"
	KeySkills   = "skills"
	KeyServices = "services"
)

// Cache is a read-through cache. A nil *Cache or one built with a
// non-positive TTL never stores anything.
type Cache struct {
	c *gocache.Cache

	// generations counts invalidations per key. A load that started before
	// an invalidation must not store its result.
	mu          sync.Mutex
	generations map[string]uint64
}

// New creates a cache whose entries live for ttl.
func New(ttl time.Duration) *Cache {
	if ttl <= 0 {
		return &Cache{}
	}
	return &Cache{c: gocache.New(ttl, 2*ttl), generations: make(map[string]uint64)}
}

// Fetch returns the cached value for key, or calls load and caches its result.
// Errors from load are returned and nothing is cached.
func Fetch[T any](c *Cache, key string, load func() (T, error)) (T, error) {
	if c == nil || c.c == nil {
		return load()
	}

	if data, found := c.c.Get(key); found {
		if v, ok := data.(T); ok {
			metrics.CacheHit(key)
			return v, nil
		}
		log.Warn().Str("key", key).Msg("Cached value has unexpected type, reloading")
	}

	metrics.CacheMiss(key)
	gen := c.generation(key)
	v, err := load()
	if err != nil {
		return v, err
	}
	c.store(key, gen, v)
	return v, nil
}

func (c *Cache) generation(key string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generations[key]
}

// store sets key only if it was not invalidated since gen was read.
func (c *Cache) store(key string, gen uint64, v interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generations[key] != gen {
		log.Debug().Str("key", key).Msg("Cache invalidated during load, not storing")
		return
	}
	c.c.Set(key, v, gocache.DefaultExpiration)
}

// Invalidate drops the given keys.
func (c *Cache) Invalidate(keys ...string) {
	if c == nil || c.c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range keys {
		c.generations[key]++
		c.c.Delete(key)
	}
}
