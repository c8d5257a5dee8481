package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"foodbites/order-svc/internal/domain"
)

var (
	ErrInvalidOrder   = errors.New("order must contain at least one item")
	ErrInvalidAddress = errors.New("please enter a valid delivery address")
	ErrDuplicateOrder = errors.New("order already submitted")
	ErrOrderNotFound  = errors.New("order not found")
	ErrNotOwner       = errors.New("order belongs to another user")
)

const (
	minQuantity = 1
	maxQuantity = 99
)

type OrderService struct {
	repository OrderRepository
	cache      OrderCache
	publisher  OrderPublisher
	qrEncoder  QRGenerator
}

func NewOrderService(repository OrderRepository, cache OrderCache, publisher OrderPublisher, qr QRGenerator) *OrderService {
	return &OrderService{
		repository: repository,
		cache:      cache,
		publisher:  publisher,
		qrEncoder:  qr,
	}
}

func (s *OrderService) Place(ctx context.Context, userID, idempotencyKey string, incoming *domain.IncomingOrder) (*domain.Order, error) {
	address := strings.TrimSpace(incoming.Address)
	if address == "" {
		return nil, ErrInvalidAddress
	}
	if len(incoming.Items) == 0 {
		return nil, ErrInvalidOrder
	}
	for _, item := range incoming.Items {
		if item.Quantity < minQuantity || item.Quantity > maxQuantity {
			return nil, fmt.Errorf("%w: quantity %d out of range", ErrInvalidOrder, item.Quantity)
		}
	}
	if incoming.TotalAmount < 0 {
		return nil, fmt.Errorf("%w: negative total", ErrInvalidOrder)
	}

	if idempotencyKey != "" {
		cacheKey := s.cache.OrderMarkerKey(userID, idempotencyKey)
		if exists, _ := s.cache.Exists(ctx, cacheKey); exists {
			return nil, ErrDuplicateOrder
		}
	}

	order := &domain.Order{
		ID:          uuid.NewString(),
		UserID:      userID,
		Items:       incoming.Items,
		TotalAmount: incoming.TotalAmount,
		Address:     address,
		Status:      "placed",
	}
	if err := s.repository.CreateOrder(order); err != nil {
		return nil, err
	}
	order.QRLink = fmt.Sprintf("/api/orders/%s/qrcode", order.ID)

	if idempotencyKey != "" {
		_ = s.cache.SetMarker(ctx, s.cache.OrderMarkerKey(userID, idempotencyKey))
	}

	if s.qrEncoder != nil {
		if qr, err := s.qrEncoder.Generate(order.ID); err == nil {
			_ = s.repository.SaveQRCode(order.ID, qr)
		}
	}

	if s.publisher != nil {
		_ = s.publisher.PublishOrder(ctx, domain.KafkaMessage{
			Type:        "order_placed",
			OrderID:     order.ID,
			UserID:      userID,
			Items:       order.Items,
			TotalAmount: order.TotalAmount,
			Timestamp:   time.Now(),
		})
	}

	return order, nil
}

func (s *OrderService) ListUserOrders(userID string) ([]domain.Order, error) {
	return s.repository.ListUserOrders(userID)
}

func (s *OrderService) Get(orderID, userID string) (*domain.Order, error) {
	order, items, err := s.repository.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, ErrNotOwner
	}
	order.Items = items
	order.QRLink = fmt.Sprintf("/api/orders/%s/qrcode", order.ID)
	return order, nil
}

func (s *OrderService) GetQRCode(orderID, userID string) ([]byte, error) {
	order, _, err := s.repository.GetOrder(orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, ErrNotOwner
	}

	qr, err := s.repository.GetQRCode(orderID)
	if err != nil {
		return nil, err
	}
	if len(qr) == 0 && s.qrEncoder != nil {
		if regenerated, err := s.qrEncoder.Generate(orderID); err == nil {
			_ = s.repository.SaveQRCode(orderID, regenerated)
			return regenerated, nil
		}
	}
	return qr, nil
}

var _ OrderServiceInterface = (*OrderService)(nil)
