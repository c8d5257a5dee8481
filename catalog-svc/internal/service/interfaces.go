package service

import (
	"context"

	"foodbites/catalog-svc/internal/domain"
)

type FoodServiceInterface interface {
	Create(ctx context.Context, food *domain.Food) error
	List(ctx context.Context, search string) ([]domain.Food, error)
	Get(ctx context.Context, id string) (*domain.Food, error)
	Update(ctx context.Context, food *domain.Food) error
	Delete(ctx context.Context, id string) (int64, error)
}

type FoodRepository interface {
	CreateFood(food *domain.Food) error
	ListFoods(search string) ([]domain.Food, error)
	GetFood(id string) (*domain.Food, error)
	UpdateFood(food *domain.Food) (int64, error)
	DeleteFood(id string) (int64, error)
}

type FoodCache interface {
	SearchKey(search string) string
	GetFoods(ctx context.Context, key string) ([]domain.Food, bool, error)
	SetFoods(ctx context.Context, key string, foods []domain.Food) error
	InvalidateAll(ctx context.Context) error
}

var _ FoodServiceInterface = (*FoodService)(nil)
