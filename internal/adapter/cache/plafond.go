package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"loanflow/internal/domain/plafond"
)

const plafondKeyPrefix = "plafonds:"

// PlafondCache stores catalog read views in Redis under plafonds:<query shape>.
type PlafondCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewPlafondCache(rdb *redis.Client, ttl time.Duration) *PlafondCache {
	return &PlafondCache{rdb: rdb, ttl: ttl}
}

func (c *PlafondCache) GetList(ctx context.Context, key string) ([]plafond.Plafond, bool, error) {
	raw, err := c.rdb.Get(ctx, plafondKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var out []plafond.Plafond
	if err := json.Unmarshal(raw, &out); err != nil {
		// A corrupt entry is a miss; the next SetList overwrites it.
		return nil, false, nil
	}
	return out, true, nil
}

func (c *PlafondCache) SetList(ctx context.Context, key string, list []plafond.Plafond) error {
	if list == nil {
		list = []plafond.Plafond{}
	}
	payload, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, plafondKeyPrefix+key, payload, c.ttl).Err()
}

// InvalidateAll drops every catalog view. Eligibility views are range queries,
// so no single write can be mapped onto a subset of keys.
func (c *PlafondCache) InvalidateAll(ctx context.Context) error {
	iter := c.rdb.Scan(ctx, 0, plafondKeyPrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}

// Nop is used when no Redis is configured: every read misses.
type Nop struct{}

func (Nop) GetList(context.Context, string) ([]plafond.Plafond, bool, error) { return nil, false, nil }
func (Nop) SetList(context.Context, string, []plafond.Plafond) error { return nil }
func (Nop) InvalidateAll(context.Context) error { return nil }
