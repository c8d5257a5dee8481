package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"foodbites/cart-svc/internal/cart"
	"foodbites/cart-svc/internal/domain"
	"foodbites/cart-svc/internal/service"

	"github.com/gorilla/mux"
)

const sessionHeader = "X-Session-Id"

type Handler struct {
	Carts service.CartServiceInterface
}

func NewHandler(carts service.CartServiceInterface) *Handler {
	return &Handler{Carts: carts}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.HandleFunc("/api/cart/session", h.createSession).Methods("POST")
	r.HandleFunc("/api/cart", h.getCart).Methods("GET")
	r.HandleFunc("/api/cart", h.clearCart).Methods("DELETE")
	r.HandleFunc("/api/cart/items", h.addItem).Methods("POST")
	r.HandleFunc("/api/cart/items/{foodId}", h.updateQuantity).Methods("PUT")
	r.HandleFunc("/api/cart/items/{foodId}", h.removeItem).Methods("DELETE")
	r.HandleFunc("/api/cart/checkout", h.checkout).Methods("POST")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "cart-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusCreated, map[string]string{
		"session_id": h.Carts.CreateSession(),
	})
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	cartView, err := h.Carts.View(r.Header.Get(sessionHeader))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, cartView)
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Food     domain.FoodItem `json:"food"`
		Quantity int             `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	cartView, err := h.Carts.Add(r.Header.Get(sessionHeader), req.Food, req.Quantity)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, cartView)
}

func (h *Handler) updateQuantity(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}

	cartView, err := h.Carts.UpdateQuantity(r.Header.Get(sessionHeader), mux.Vars(r)["foodId"], req.Quantity)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, cartView)
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	if err := h.Carts.Remove(r.Header.Get(sessionHeader), mux.Vars(r)["foodId"]); err != nil {
		respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.Carts.Clear(r.Header.Get(sessionHeader)); err != nil {
		respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Address string `json:"address"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}

	err := h.Carts.Checkout(r.Context(), r.Header.Get(sessionHeader), req.Address, r.Header.Get("Authorization"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			respondError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrEmptyCart), errors.Is(err, cart.ErrEmptyAddress):
			respondError(w, http.StatusBadRequest, err.Error())
		default:
			respondError(w, http.StatusBadGateway, err.Error())
		}
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Order placed successfully"})
}

func respondServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, service.ErrSessionNotFound) {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}
	respondError(w, http.StatusInternalServerError, err.Error())
}

func respondJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, code int, message string) {
	respondJSON(w, code, map[string]string{"message": message})
}
