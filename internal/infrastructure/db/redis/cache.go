package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/techstore/inventory-api/internal/api/metrics"
	"github.com/techstore/inventory-api/internal/core/domain"
)

const defaultCacheTTL = 5 * time.Minute

// LaptopCache is a read-through cache for laptop-by-id lookups backed by
// Redis. Key format: laptop:<id>. Entries expire after the configured TTL
// and are invalidated on every mutation.
type LaptopCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewLaptopCache creates a LaptopCache wrapping the given Redis client.
func NewLaptopCache(client *redis.Client, ttl time.Duration) *LaptopCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &LaptopCache{client: client, ttl: ttl}
}

// Get returns the cached laptop, or (nil, nil) on a miss.
func (c *LaptopCache) Get(ctx context.Context, id string) (*domain.Laptop, error) {
	data, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.CacheLookupsTotal.WithLabelValues("miss").Inc()
			return nil, nil
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var laptop domain.Laptop
	if err := json.Unmarshal(data, &laptop); err != nil {
		// A corrupt entry is treated as a miss and dropped.
		_ = c.client.Del(ctx, c.key(id)).Err()
		metrics.CacheLookupsTotal.WithLabelValues("miss").Inc()
		return nil, nil
	}

	metrics.CacheLookupsTotal.WithLabelValues("hit").Inc()
	return &laptop, nil
}

// Set stores the laptop under its id (expires after the configured TTL).
func (c *LaptopCache) Set(ctx context.Context, laptop *domain.Laptop) error {
	data, err := json.Marshal(laptop)
	if err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return c.client.Set(ctx, c.key(laptop.ID), data, c.ttl).Err()
}

// Invalidate drops the cache entry for the given id.
func (c *LaptopCache) Invalidate(ctx context.Context, id string) error {
	return c.client.Del(ctx, c.key(id)).Err()
}

func (c *LaptopCache) key(id string) string {
	return "laptop:" + id
}
