package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"brewdash/internal/model"
)

type redisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache creates a Redis-backed cache so analyses survive restarts
// and are shared between instances.
func NewRedisCache(client *redis.Client, ttl time.Duration) AnalysisCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &redisCache{client: client, ttl: ttl}
}

func (c *redisCache) Get(ctx context.Context, key string) (*model.FourPAnalysis, error) {
	data, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var analysis model.FourPAnalysis
	if err := json.Unmarshal([]byte(data), &analysis); err != nil {
		return nil, err
	}
	return &analysis, nil
}

func (c *redisCache) Put(ctx context.Context, key string, analysis *model.FourPAnalysis) error {
	data, err := json.Marshal(analysis)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, c.ttl).Err()
}
