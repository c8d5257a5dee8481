package tests

import (
	"context"
	"testing"

	"foodbites/catalog-svc/internal/domain"
	"foodbites/catalog-svc/internal/mocks"
	"foodbites/catalog-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestFoodService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("cache_miss_decorates_and_caches", func(t *testing.T) {
		repository := mocks.NewFoodRepository(t)
		cache := mocks.NewFoodCache(t)
		svc := service.NewFoodService(repository, cache)

		stored := []domain.Food{
			{ID: "f1", Name: "Cheese Deluxe", Category: "burger", Price: 9.5},
			{ID: "f2", Name: "Dragon Roll", Category: "sushi", Price: 14},
		}

		cache.On("SearchKey", "").Return("foods:search:all").Once()
		cache.On("GetFoods", ctx, "foods:search:all").Return(nil, false, nil).Once()
		repository.On("ListFoods", "").Return(stored, nil).Once()
		cache.On("SetFoods", ctx, "foods:search:all", mock.Anything).Return(nil).Once()

		foods, err := svc.List(ctx, "")
		assert.NoError(t, err)
		assert.Len(t, foods, 2)
		assert.Equal(t, "🍔", foods[0].Emoji)
		assert.NotEmpty(t, foods[0].Image)
		assert.Equal(t, "🍣", foods[1].Emoji)
	})

	t.Run("cache_hit_skips_repository", func(t *testing.T) {
		repository := mocks.NewFoodRepository(t)
		cache := mocks.NewFoodCache(t)
		svc := service.NewFoodService(repository, cache)

		cached := []domain.Food{{ID: "f1", Name: "Cheese Deluxe", Emoji: "🍔"}}
		cache.On("SearchKey", "burger").Return("foods:search:burger").Once()
		cache.On("GetFoods", ctx, "foods:search:burger").Return(cached, true, nil).Once()

		foods, err := svc.List(ctx, "burger")
		assert.NoError(t, err)
		assert.Equal(t, cached, foods)
	})

	t.Run("repository_error", func(t *testing.T) {
		repository := mocks.NewFoodRepository(t)
		cache := mocks.NewFoodCache(t)
		svc := service.NewFoodService(repository, cache)

		cache.On("SearchKey", "").Return("foods:search:all").Once()
		cache.On("GetFoods", ctx, "foods:search:all").Return(nil, false, nil).Once()
		repository.On("ListFoods", "").Return(nil, assert.AnError).Once()

		_, err := svc.List(ctx, "")
		assert.Error(t, err)
	})
}

func TestFoodService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		input   *domain.Food
		wantErr error
	}{
		{
			name:  "valid food",
			input: &domain.Food{Name: "Spicy Ramen", Category: "ramen", Price: 11.5},
		},
		{
			name:    "missing name",
			input:   &domain.Food{Price: 5},
			wantErr: service.ErrInvalidFood,
		},
		{
			name:    "negative price",
			input:   &domain.Food{Name: "Freebie", Price: -1},
			wantErr: service.ErrInvalidFood,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repository := mocks.NewFoodRepository(t)
			cache := mocks.NewFoodCache(t)
			svc := service.NewFoodService(repository, cache)

			if testCase.wantErr == nil {
				repository.On("CreateFood", testCase.input).Return(nil).Once()
				cache.On("InvalidateAll", ctx).Return(nil).Once()
			}

			err := svc.Create(ctx, testCase.input)

			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.NotEmpty(t, testCase.input.ID)
			assert.NotEmpty(t, testCase.input.Emoji)
		})
	}
}

func TestFoodService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("not_found", func(t *testing.T) {
		repository := mocks.NewFoodRepository(t)
		cache := mocks.NewFoodCache(t)
		svc := service.NewFoodService(repository, cache)

		food := &domain.Food{ID: "missing", Name: "Ghost Dish", Price: 1}
		repository.On("UpdateFood", food).Return(int64(0), nil).Once()

		err := svc.Update(ctx, food)
		assert.ErrorIs(t, err, service.ErrFoodNotFound)
	})

	t.Run("success_invalidates_cache", func(t *testing.T) {
		repository := mocks.NewFoodRepository(t)
		cache := mocks.NewFoodCache(t)
		svc := service.NewFoodService(repository, cache)

		food := &domain.Food{ID: "f1", Name: "Garden Salad", Category: "salad", Price: 7}
		repository.On("UpdateFood", food).Return(int64(1), nil).Once()
		cache.On("InvalidateAll", ctx).Return(nil).Once()

		err := svc.Update(ctx, food)
		assert.NoError(t, err)
		assert.Equal(t, "🥗", food.Emoji)
	})
}

func TestFoodService_Delete(t *testing.T) {
	ctx := context.Background()

	repository := mocks.NewFoodRepository(t)
	cache := mocks.NewFoodCache(t)
	svc := service.NewFoodService(repository, cache)

	repository.On("DeleteFood", "f1").Return(int64(1), nil).Once()
	cache.On("InvalidateAll", ctx).Return(nil).Once()

	affected, err := svc.Delete(ctx, "f1")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	repository.On("DeleteFood", "gone").Return(int64(0), nil).Once()
	affected, err = svc.Delete(ctx, "gone")
	assert.NoError(t, err)
	assert.Zero(t, affected)
}
