package service

import (
	"context"
	"errors"
	"log"

	"foodbites/catalog-svc/internal/assets"
	"foodbites/catalog-svc/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrInvalidFood  = errors.New("food name is required and price must be non-negative")
	ErrFoodNotFound = errors.New("food not found")
)

type FoodService struct {
	repository FoodRepository
	cache      FoodCache
}

func NewFoodService(repository FoodRepository, cache FoodCache) *FoodService {
	return &FoodService{repository: repository, cache: cache}
}

func (s *FoodService) Create(ctx context.Context, food *domain.Food) error {
	if food.Name == "" || food.Price < 0 {
		return ErrInvalidFood
	}
	food.ID = uuid.NewString()
	if err := s.repository.CreateFood(food); err != nil {
		return err
	}
	s.invalidate(ctx)
	decorate(food)
	return nil
}

// List returns foods matching the search term, decorated with display assets.
// Decorated results are cached; any write to the catalog drops the cache.
func (s *FoodService) List(ctx context.Context, search string) ([]domain.Food, error) {
	key := s.cache.SearchKey(search)
	if cached, hit, err := s.cache.GetFoods(ctx, key); err == nil && hit {
		return cached, nil
	}

	foods, err := s.repository.ListFoods(search)
	if err != nil {
		return nil, err
	}
	for i := range foods {
		decorate(&foods[i])
	}

	if err := s.cache.SetFoods(ctx, key, foods); err != nil {
		log.Printf("[catalog-svc] failed to cache foods for %q: %v", key, err)
	}
	return foods, nil
}

func (s *FoodService) Get(ctx context.Context, id string) (*domain.Food, error) {
	food, err := s.repository.GetFood(id)
	if err != nil {
		return nil, err
	}
	decorate(food)
	return food, nil
}

func (s *FoodService) Update(ctx context.Context, food *domain.Food) error {
	if food.Name == "" || food.Price < 0 {
		return ErrInvalidFood
	}
	affected, err := s.repository.UpdateFood(food)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrFoodNotFound
	}
	s.invalidate(ctx)
	decorate(food)
	return nil
}

func (s *FoodService) Delete(ctx context.Context, id string) (int64, error) {
	affected, err := s.repository.DeleteFood(id)
	if err != nil {
		return 0, err
	}
	if affected > 0 {
		s.invalidate(ctx)
	}
	return affected, nil
}

func (s *FoodService) invalidate(ctx context.Context) {
	if err := s.cache.InvalidateAll(ctx); err != nil {
		log.Printf("[catalog-svc] cache invalidation failed: %v", err)
	}
}

// decorate fills the emoji and, for foods without a stored image, the
// resolved default image.
func decorate(food *domain.Food) {
	asset := assets.Resolve(food.Category, food.Name, food.Description)
	food.Emoji = asset.Emoji
	if food.Image == "" {
		food.Image = asset.Image
	}
}
