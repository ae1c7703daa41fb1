package weathercache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/styling-advisor/internal/domain/styling"
)

func TestMemoryCacheExpiry(t *testing.T) {
	now := time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)
	cache := NewMemoryCache()
	cache.now = func() time.Time { return now }
	ctx := context.Background()
	weather := styling.Weather{TempC: 18, Condition: "Clouds", Available: true}

	require.NoError(t, cache.Put(ctx, "paris", weather, time.Minute))

	got, ok, err := cache.Get(ctx, "paris")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, weather, got)

	now = now.Add(2 * time.Minute)
	_, ok, err = cache.Get(ctx, "paris")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMemoryCacheZeroTTLSkipsWrite(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, cache.Put(ctx, "rome", styling.Weather{TempC: 30}, 0))
	_, ok, err := cache.Get(ctx, "rome")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMemoryCacheEvictionKeepsFreshEntry(t *testing.T) {
	now := time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)
	cache := NewMemoryCache()
	cache.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, cache.Put(ctx, "oslo", styling.Weather{TempC: 1, Available: true}, time.Minute))
	now = now.Add(2 * time.Minute)

	// A Put lands between Get's expired read and its eviction.
	fresh := styling.Weather{TempC: 3, Condition: "Snow", Available: true}
	require.NoError(t, cache.Put(ctx, "oslo", fresh, time.Minute))
	cache.evictExpired("oslo")

	got, ok, err := cache.Get(ctx, "oslo")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, fresh, got)

	now = now.Add(2 * time.Minute)
	cache.evictExpired("oslo")
	cache.mu.RLock()
	_, present := cache.entries["oslo"]
	cache.mu.RUnlock()
	require.False(t, present)
}
