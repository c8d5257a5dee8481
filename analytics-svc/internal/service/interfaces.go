package service

import (
	"foodbites/analytics-svc/internal/domain"
)

type AnalyticsInterface interface {
	TopToday() ([]domain.FoodAnalytics, error)
	TopAllTime() ([]domain.FoodAnalytics, error)
}

var _ AnalyticsInterface = (*AnalyticsService)(nil)
