package storage

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"foodbites/order-svc/internal/service"
)

type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

func (c *RedisCache) OrderMarkerKey(userID, idempotencyKey string) string {
	return "order:submitted:" + userID + ":" + idempotencyKey
}

func (c *RedisCache) Exists(ctx context.Context, key string) (bool, error) {
	res, err := c.Client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return res > 0, nil
}

func (c *RedisCache) SetMarker(ctx context.Context, key string) error {
	return c.Client.Set(ctx, key, "1", c.TTL).Err()
}

var _ service.OrderCache = (*RedisCache)(nil)
