package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
)

// Cache is a thin wrapper over the Redis client used for cache-aside
// reads. A nil-safe miss is reported as redis.Nil by Get.
type Cache struct {
	client *redis.Client
}

func New(client *redis.Client) (*Cache, error) {
	if client == nil {
		return nil, errors.New("redis client is not initialized")
	}
	return &Cache{client: client}, nil
}

func (c *Cache) Get(ctx context.Context, key string) (string, error) {
	return c.client.Get(ctx, key).Result()
}

func (c *Cache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return c.client.Set(ctx, key, value, expiration).Err()
}

func (c *Cache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}
