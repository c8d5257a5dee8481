package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/redis/go-redis/v9"

	"foodbites/analytics-svc/internal/domain"
)

const (
	dailyKeyPrefix = "popularity:daily:"
	allTimeKey     = "popularity:alltime"
	topLimit       = 10
)

type AnalyticsService struct {
	db  *sql.DB
	rdb *redis.Client
	ctx context.Context
}

func NewAnalyticsService(db *sql.DB, rdb *redis.Client) *AnalyticsService {
	return &AnalyticsService{
		db:  db,
		rdb: rdb,
		ctx: context.Background(),
	}
}

func (s *AnalyticsService) TopToday() ([]domain.FoodAnalytics, error) {
	today := time.Now().Format("2006-01-02")
	foods, err := s.topFromZSet(dailyKeyPrefix + today)
	if err != nil || len(foods) == 0 {
		return s.topTodayFromDB()
	}
	return foods, nil
}

func (s *AnalyticsService) TopAllTime() ([]domain.FoodAnalytics, error) {
	foods, err := s.topFromZSet(allTimeKey)
	if err != nil || len(foods) == 0 {
		return s.topAllTimeFromDB()
	}
	return foods, nil
}

func (s *AnalyticsService) topFromZSet(key string) ([]domain.FoodAnalytics, error) {
	result, err := s.rdb.ZRevRangeWithScores(s.ctx, key, 0, topLimit-1).Result()
	if err != nil {
		return nil, err
	}

	var foods []domain.FoodAnalytics
	for _, member := range result {
		foodID, _ := member.Member.(string)
		var name, category string
		var orderCount int
		if err := s.db.QueryRow(`
			SELECT name, category, COALESCE(order_count, 0)
			FROM foods
			WHERE id = $1
		`, foodID).Scan(&name, &category, &orderCount); err != nil {
			continue
		}
		foods = append(foods, domain.FoodAnalytics{
			FoodID:     foodID,
			FoodName:   name,
			Category:   category,
			Score:      member.Score,
			OrderCount: orderCount,
		})
	}
	return foods, nil
}

func (s *AnalyticsService) topTodayFromDB() ([]domain.FoodAnalytics, error) {
	return s.queryTop(`
		SELECT f.id, f.name, f.category, SUM(oi.quantity) as score, COALESCE(f.order_count, 0)
		FROM foods f
		JOIN order_items oi ON f.id = oi.food_id
		JOIN orders o ON oi.order_id = o.id
		WHERE o.created_at::date = CURRENT_DATE
		GROUP BY f.id, f.name, f.category, f.order_count
		ORDER BY score DESC
		LIMIT $1
	`)
}

func (s *AnalyticsService) topAllTimeFromDB() ([]domain.FoodAnalytics, error) {
	return s.queryTop(`
		SELECT id, name, category, COALESCE(order_count, 0) as score, COALESCE(order_count, 0)
		FROM foods
		WHERE COALESCE(order_count, 0) > 0
		ORDER BY order_count DESC
		LIMIT $1
	`)
}

func (s *AnalyticsService) queryTop(query string) ([]domain.FoodAnalytics, error) {
	rows, err := s.db.Query(query, topLimit)
	if err != nil {
		return []domain.FoodAnalytics{}, nil
	}
	defer rows.Close()

	var foods []domain.FoodAnalytics
	for rows.Next() {
		var f domain.FoodAnalytics
		if err := rows.Scan(&f.FoodID, &f.FoodName, &f.Category, &f.Score, &f.OrderCount); err != nil {
			continue
		}
		foods = append(foods, f)
	}
	return foods, nil
}
