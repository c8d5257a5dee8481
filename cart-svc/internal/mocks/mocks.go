package mocks

import (
	"context"
	"testing"

	"foodbites/cart-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

type OrderSubmitter struct {
	mock.Mock
}

func NewOrderSubmitter(t *testing.T) *OrderSubmitter {
	m := &OrderSubmitter{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *OrderSubmitter) Submit(ctx context.Context, payload *domain.OrderPayload, authorization, idempotencyKey string) error {
	args := m.Called(ctx, payload, authorization, idempotencyKey)
	return args.Error(0)
}

type CartServiceInterface struct {
	mock.Mock
}

func NewCartServiceInterface(t *testing.T) *CartServiceInterface {
	m := &CartServiceInterface{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *CartServiceInterface) CreateSession() string {
	args := m.Called()
	return args.String(0)
}

func (m *CartServiceInterface) View(sessionID string) (*domain.CartView, error) {
	args := m.Called(sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CartView), args.Error(1)
}

func (m *CartServiceInterface) Add(sessionID string, item domain.FoodItem, quantity int) (*domain.CartView, error) {
	args := m.Called(sessionID, item, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CartView), args.Error(1)
}

func (m *CartServiceInterface) UpdateQuantity(sessionID, foodID string, quantity int) (*domain.CartView, error) {
	args := m.Called(sessionID, foodID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CartView), args.Error(1)
}

func (m *CartServiceInterface) Remove(sessionID, foodID string) error {
	args := m.Called(sessionID, foodID)
	return args.Error(0)
}

func (m *CartServiceInterface) Clear(sessionID string) error {
	args := m.Called(sessionID)
	return args.Error(0)
}

func (m *CartServiceInterface) Checkout(ctx context.Context, sessionID, address, authorization string) error {
	args := m.Called(ctx, sessionID, address, authorization)
	return args.Error(0)
}
