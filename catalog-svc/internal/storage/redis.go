package storage

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"foodbites/catalog-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const searchKeyPrefix = "foods:search:"

type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

func (c *RedisCache) SearchKey(search string) string {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		search = "all"
	}
	return searchKeyPrefix + search
}

func (c *RedisCache) GetFoods(ctx context.Context, key string) ([]domain.Food, bool, error) {
	payload, err := c.Client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var foods []domain.Food
	if err := json.Unmarshal(payload, &foods); err != nil {
		return nil, false, err
	}
	return foods, true, nil
}

func (c *RedisCache) SetFoods(ctx context.Context, key string, foods []domain.Food) error {
	payload, err := json.Marshal(foods)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, key, payload, c.TTL).Err()
}

func (c *RedisCache) InvalidateAll(ctx context.Context) error {
	keys, err := c.Client.Keys(ctx, searchKeyPrefix+"*").Result()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.Client.Del(ctx, keys...).Err()
}
