package weathercache

import (
	"context"
	"sync"
	"time"

	"github.com/yanqian/styling-advisor/internal/domain/styling"
)

type entry struct {
	weather   styling.Weather
	expiresAt time.Time
}

// MemoryCache is an in-memory weather cache for tests/dev.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

// NewMemoryCache constructs a cache backed by process memory.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Get implements styling.WeatherCache.
func (c *MemoryCache) Get(_ context.Context, city string) (styling.Weather, bool, error) {
	c.mu.RLock()
	record, ok := c.entries[city]
	c.mu.RUnlock()
	if !ok {
		return styling.Weather{}, false, nil
	}
	if c.hasExpired(record.expiresAt) {
		c.evictExpired(city)
		return styling.Weather{}, false, nil
	}
	return record.weather, true, nil
}

// evictExpired deletes city only if its entry is still expired once the write
// lock is held, so a Put that landed after the read is kept.
func (c *MemoryCache) evictExpired(city string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if record, ok := c.entries[city]; ok && c.hasExpired(record.expiresAt) {
		delete(c.entries, city)
	}
}

// Put caches the weather with optional TTL. A non-positive TTL disables caching.
func (c *MemoryCache) Put(_ context.Context, city string, weather styling.Weather, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[city] = entry{
		weather:   weather,
		expiresAt: c.now().Add(ttl),
	}
	return nil
}

func (c *MemoryCache) hasExpired(ts time.Time) bool {
	if ts.IsZero() {
		return false
	}
	return ts.Before(c.now())
}

var _ styling.WeatherCache = (*MemoryCache)(nil)
