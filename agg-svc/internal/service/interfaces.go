package service

import (
	"context"

	"foodbites/agg-svc/internal/domain"
	"foodbites/agg-svc/internal/storage"
)

type StoreInterface interface {
	IncrementOrderCount(foodID string, quantity int) error
	BumpPopularity(foodID string, quantity int) error
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	ProcessOrder(msg domain.KafkaMessage)
}

var _ StoreInterface = (*storage.Store)(nil)
