package service

import (
	"context"

	"foodbites/cart-svc/internal/domain"
)

type CartServiceInterface interface {
	CreateSession() string
	View(sessionID string) (*domain.CartView, error)
	Add(sessionID string, item domain.FoodItem, quantity int) (*domain.CartView, error)
	UpdateQuantity(sessionID, foodID string, quantity int) (*domain.CartView, error)
	Remove(sessionID, foodID string) error
	Clear(sessionID string) error
	Checkout(ctx context.Context, sessionID, address, authorization string) error
}

// OrderSubmitter posts a built payload to the order service. The
// authorization value is threaded through verbatim; the cart never parses
// the credential.
type OrderSubmitter interface {
	Submit(ctx context.Context, payload *domain.OrderPayload, authorization, idempotencyKey string) error
}

var _ CartServiceInterface = (*CartService)(nil)
