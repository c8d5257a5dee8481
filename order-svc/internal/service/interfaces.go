package service

import (
	"context"

	"foodbites/order-svc/internal/domain"
)

type OrderServiceInterface interface {
	Place(ctx context.Context, userID, idempotencyKey string, incoming *domain.IncomingOrder) (*domain.Order, error)
	ListUserOrders(userID string) ([]domain.Order, error)
	Get(orderID, userID string) (*domain.Order, error)
	GetQRCode(orderID, userID string) ([]byte, error)
}

type OrderRepository interface {
	CreateOrder(order *domain.Order) error
	GetOrder(orderID string) (*domain.Order, []domain.OrderItem, error)
	ListUserOrders(userID string) ([]domain.Order, error)
	SaveQRCode(orderID string, qr []byte) error
	GetQRCode(orderID string) ([]byte, error)
}

type OrderCache interface {
	OrderMarkerKey(userID, idempotencyKey string) string
	Exists(ctx context.Context, key string) (bool, error)
	SetMarker(ctx context.Context, key string) error
}

type OrderPublisher interface {
	PublishOrder(ctx context.Context, msg domain.KafkaMessage) error
}

type QRGenerator interface {
	Generate(orderID string) ([]byte, error)
}
