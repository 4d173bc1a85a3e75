package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"myHousePrice/domain"
)

// ValuationCache stores finished valuation responses keyed by a hash of the
// raw case. The pipeline is deterministic per input, so entries never go
// stale before their TTL; the TTL only bounds memory.
type ValuationCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewValuationCache(client *redis.Client, ttl time.Duration) *ValuationCache {
	return &ValuationCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *ValuationCache) Get(ctx context.Context, key string) (*domain.Valuation, bool, error) {
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get valuation from Redis: %w", err)
	}

	var valuation domain.Valuation
	if err := json.Unmarshal([]byte(val), &valuation); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal cached valuation: %w", err)
	}

	return &valuation, true, nil
}

func (c *ValuationCache) Set(ctx context.Context, key string, v *domain.Valuation) error {
	jsonData, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal valuation: %w", err)
	}

	if err := c.client.Set(ctx, key, jsonData, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store valuation in Redis: %w", err)
	}

	return nil
}
