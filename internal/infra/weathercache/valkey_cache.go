package weathercache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/styling-advisor/internal/domain/styling"
)

// ValkeyCache persists weather lookups in a Valkey-compatible database.
type ValkeyCache struct {
	client valkey.Client
	prefix string
}

// NewValkeyCache constructs a new cache backed by Valkey.
func NewValkeyCache(client valkey.Client, prefix string) *ValkeyCache {
	if prefix == "" {
		prefix = "weather"
	}
	return &ValkeyCache{client: client, prefix: prefix}
}

func (c *ValkeyCache) Get(ctx context.Context, city string) (styling.Weather, bool, error) {
	cmd := c.client.B().Get().Key(c.key(city)).Build()
	payload, err := c.client.Do(ctx, cmd).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return styling.Weather{}, false, nil
		}
		return styling.Weather{}, false, err
	}
	var weather styling.Weather
	if err := json.Unmarshal([]byte(payload), &weather); err != nil {
		return styling.Weather{}, false, err
	}
	return weather, true, nil
}

func (c *ValkeyCache) Put(ctx context.Context, city string, weather styling.Weather, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if ttl < time.Second {
		ttl = time.Second
	}
	payload, err := json.Marshal(weather)
	if err != nil {
		return err
	}
	cmd := c.client.B().Set().Key(c.key(city)).Value(string(payload)).Ex(ttl).Build()
	return c.client.Do(ctx, cmd).Error()
}

func (c *ValkeyCache) key(city string) string {
	return fmt.Sprintf("%s:city:%s", c.prefix, city)
}

var _ styling.WeatherCache = (*ValkeyCache)(nil)
