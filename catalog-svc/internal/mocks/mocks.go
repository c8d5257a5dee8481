package mocks

import (
	"context"
	"testing"

	"foodbites/catalog-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

type FoodRepository struct {
	mock.Mock
}

func NewFoodRepository(t *testing.T) *FoodRepository {
	m := &FoodRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *FoodRepository) CreateFood(food *domain.Food) error {
	args := m.Called(food)
	return args.Error(0)
}

func (m *FoodRepository) ListFoods(search string) ([]domain.Food, error) {
	args := m.Called(search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Food), args.Error(1)
}

func (m *FoodRepository) GetFood(id string) (*domain.Food, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Food), args.Error(1)
}

func (m *FoodRepository) UpdateFood(food *domain.Food) (int64, error) {
	args := m.Called(food)
	return args.Get(0).(int64), args.Error(1)
}

func (m *FoodRepository) DeleteFood(id string) (int64, error) {
	args := m.Called(id)
	return args.Get(0).(int64), args.Error(1)
}

type FoodCache struct {
	mock.Mock
}

func NewFoodCache(t *testing.T) *FoodCache {
	m := &FoodCache{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *FoodCache) SearchKey(search string) string {
	args := m.Called(search)
	return args.String(0)
}

func (m *FoodCache) GetFoods(ctx context.Context, key string) ([]domain.Food, bool, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]domain.Food), args.Bool(1), args.Error(2)
}

func (m *FoodCache) SetFoods(ctx context.Context, key string, foods []domain.Food) error {
	args := m.Called(ctx, key, foods)
	return args.Error(0)
}

func (m *FoodCache) InvalidateAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type FoodServiceInterface struct {
	mock.Mock
}

func NewFoodServiceInterface(t *testing.T) *FoodServiceInterface {
	m := &FoodServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *FoodServiceInterface) Create(ctx context.Context, food *domain.Food) error {
	args := m.Called(ctx, food)
	return args.Error(0)
}

func (m *FoodServiceInterface) List(ctx context.Context, search string) ([]domain.Food, error) {
	args := m.Called(ctx, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Food), args.Error(1)
}

func (m *FoodServiceInterface) Get(ctx context.Context, id string) (*domain.Food, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Food), args.Error(1)
}

func (m *FoodServiceInterface) Update(ctx context.Context, food *domain.Food) error {
	args := m.Called(ctx, food)
	return args.Error(0)
}

func (m *FoodServiceInterface) Delete(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}
