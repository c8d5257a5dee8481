package storage

import (
	"context"
	"database/sql"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	DailyKeyPrefix = "popularity:daily:"
	AllTimeKey     = "popularity:alltime"
)

type Store struct {
	db  *sql.DB
	rdb *redis.Client
	ctx context.Context
}

func NewStore(db *sql.DB, rdb *redis.Client) *Store {
	return &Store{
		db:  db,
		rdb: rdb,
		ctx: context.Background(),
	}
}

func (s *Store) IncrementOrderCount(foodID string, quantity int) error {
	_, err := s.db.Exec(`
		UPDATE foods
		SET order_count = COALESCE(order_count, 0) + $1
		WHERE id = $2
	`, quantity, foodID)
	return err
}

func (s *Store) BumpPopularity(foodID string, quantity int) error {
	today := time.Now().Format("2006-01-02")
	dailyKey := DailyKeyPrefix + today
	s.rdb.ZIncrBy(s.ctx, dailyKey, float64(quantity), foodID)
	s.rdb.Expire(s.ctx, dailyKey, 7*24*time.Hour)

	return s.rdb.ZIncrBy(s.ctx, AllTimeKey, float64(quantity), foodID).Err()
}
