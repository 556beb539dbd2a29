package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"mirath/internal/faraid"
)

// RedisResultCache caches calculation results in Redis. Entries are keyed by
// a digest of the exact engine input, so a hit can never serve a stale
// roster.
type RedisResultCache struct {
	client *redis.Client
}

func NewRedisResultCache(client *redis.Client) *RedisResultCache {
	return &RedisResultCache{client: client}
}

func cacheKey(key string) string {
	return "mirath:calc:" + key
}

func (c *RedisResultCache) Get(ctx context.Context, key string) (*faraid.CalculationResult, error) {
	raw, err := c.client.Get(ctx, cacheKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}
	var result faraid.CalculationResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("cache decode: %w", err)
	}
	return &result, nil
}

func (c *RedisResultCache) Set(ctx context.Context, key string, result *faraid.CalculationResult, ttl time.Duration) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	if err := c.client.Set(ctx, cacheKey(key), raw, ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}
