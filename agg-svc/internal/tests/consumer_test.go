package tests

import (
	"errors"
	"testing"

	"foodbites/agg-svc/internal/domain"
	"foodbites/agg-svc/internal/mocks"
	"foodbites/agg-svc/internal/service"
)

func strPtr(s string) *string { return &s }

func TestConsumer_ProcessOrder(t *testing.T) {
	tests := []struct {
		name           string
		inputMessage   domain.KafkaMessage
		setupMockStore func(*mocks.StoreInterface)
	}{
		{
			name: "success",
			inputMessage: domain.KafkaMessage{
				Type:    "order_placed",
				OrderID: "order-1",
				Items: []domain.OrderItem{
					{FoodID: strPtr("food-1"), Quantity: 2},
					{FoodID: strPtr("food-2"), Quantity: 1},
				},
			},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("IncrementOrderCount", "food-1", 2).Return(nil)
				mockStore.On("BumpPopularity", "food-1", 2).Return(nil)
				mockStore.On("IncrementOrderCount", "food-2", 1).Return(nil)
				mockStore.On("BumpPopularity", "food-2", 1).Return(nil)
			},
		},
		{
			name: "nil foodId skipped",
			inputMessage: domain.KafkaMessage{
				Type:    "order_placed",
				OrderID: "order-2",
				Items: []domain.OrderItem{
					{FoodID: nil, Quantity: 3},
					{FoodID: strPtr("food-1"), Quantity: 1},
				},
			},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("IncrementOrderCount", "food-1", 1).Return(nil)
				mockStore.On("BumpPopularity", "food-1", 1).Return(nil)
			},
		},
		{
			name: "IncrementOrderCount error skips popularity",
			inputMessage: domain.KafkaMessage{
				Type:    "order_placed",
				OrderID: "order-3",
				Items: []domain.OrderItem{
					{FoodID: strPtr("food-1"), Quantity: 2},
				},
			},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("IncrementOrderCount", "food-1", 2).Return(errors.New("db connection failed"))
			},
		},
		{
			name: "BumpPopularity error",
			inputMessage: domain.KafkaMessage{
				Type:    "order_placed",
				OrderID: "order-4",
				Items: []domain.OrderItem{
					{FoodID: strPtr("food-1"), Quantity: 2},
				},
			},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("IncrementOrderCount", "food-1", 2).Return(nil)
				mockStore.On("BumpPopularity", "food-1", 2).Return(errors.New("redis error"))
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockStore := mocks.NewStoreInterface(t)
			testCase.setupMockStore(mockStore)

			consumer := &service.Consumer{
				Store: mockStore,
			}

			consumer.ProcessOrder(testCase.inputMessage)
			mockStore.AssertExpectations(t)
		})
	}
}

func TestConsumer_InvalidMessageType(t *testing.T) {
	mockStore := mocks.NewStoreInterface(t)
	consumer := &service.Consumer{
		Store: mockStore,
	}

	message := domain.KafkaMessage{
		Type:    "unknown_type",
		OrderID: "order-1",
		Items:   []domain.OrderItem{{FoodID: strPtr("food-1"), Quantity: 2}},
	}

	consumer.ProcessOrder(message)
	mockStore.AssertNotCalled(t, "IncrementOrderCount")
	mockStore.AssertNotCalled(t, "BumpPopularity")
}
