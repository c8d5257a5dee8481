package service

import (
	"context"
	"errors"
	"log"
	"sync"

	"foodbites/cart-svc/internal/cart"
	"foodbites/cart-svc/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound = errors.New("cart session not found")
	ErrEmptyCart       = errors.New("cannot place an order with an empty cart")
)

// CartService keeps one Store per session behind a single mutex. The stores
// themselves are not safe for concurrent use; every mutation and read goes
// through this single-writer boundary.
type CartService struct {
	mu     sync.Mutex
	carts  map[string]*cart.Store
	orders OrderSubmitter
}

func NewCartService(orders OrderSubmitter) *CartService {
	return &CartService{
		carts:  make(map[string]*cart.Store),
		orders: orders,
	}
}

func (s *CartService) CreateSession() string {
	sessionID := uuid.NewString()
	s.mu.Lock()
	s.carts[sessionID] = cart.NewStore()
	s.mu.Unlock()
	return sessionID
}

func (s *CartService) View(sessionID string) (*domain.CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	store, ok := s.carts[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return view(store), nil
}

func (s *CartService) Add(sessionID string, item domain.FoodItem, quantity int) (*domain.CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	store, ok := s.carts[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	store.Add(item, quantity)
	return view(store), nil
}

func (s *CartService) UpdateQuantity(sessionID, foodID string, quantity int) (*domain.CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	store, ok := s.carts[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	store.UpdateQuantity(foodID, quantity)
	return view(store), nil
}

func (s *CartService) Remove(sessionID, foodID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	store, ok := s.carts[sessionID]
	if !ok {
		return ErrSessionNotFound
	}
	store.Remove(foodID)
	return nil
}

func (s *CartService) Clear(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	store, ok := s.carts[sessionID]
	if !ok {
		return ErrSessionNotFound
	}
	store.Clear()
	return nil
}

// Checkout builds the payload under the lock, submits it with the lock
// released, and clears the cart only after the order service accepts it.
// Failed submissions leave the cart untouched and are never retried here.
func (s *CartService) Checkout(ctx context.Context, sessionID, address, authorization string) error {
	s.mu.Lock()
	store, ok := s.carts[sessionID]
	if !ok {
		s.mu.Unlock()
		return ErrSessionNotFound
	}
	if store.Size() == 0 {
		s.mu.Unlock()
		return ErrEmptyCart
	}
	payload, err := cart.BuildOrderPayload(store, address)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	idempotencyKey := uuid.NewString()
	if err := s.orders.Submit(ctx, payload, authorization, idempotencyKey); err != nil {
		return err
	}

	s.mu.Lock()
	if store, ok := s.carts[sessionID]; ok {
		store.Clear()
	}
	s.mu.Unlock()

	log.Printf("[cart-svc] order placed for session %s (%d items, total %.2f)",
		sessionID, len(payload.Items), payload.TotalAmount)
	return nil
}

func view(store *cart.Store) *domain.CartView {
	return &domain.CartView{
		Items: store.Lines(),
		Total: store.Total(),
		Size:  store.Size(),
	}
}
