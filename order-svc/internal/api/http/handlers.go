package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"foodbites/order-svc/internal/domain"
	"foodbites/order-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Orders    service.OrderServiceInterface
	JWTSecret string
}

func NewHandler(orders service.OrderServiceInterface, jwtSecret string) *Handler {
	return &Handler{Orders: orders, JWTSecret: jwtSecret}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	auth := r.NewRoute().Subrouter()
	auth.Use(AuthMiddleware(h.JWTSecret))
	auth.HandleFunc("/api/orders", h.placeOrder).Methods("POST")
	auth.HandleFunc("/api/orders/my-orders", h.myOrders).Methods("GET")
	auth.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	auth.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "order-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var incoming domain.IncomingOrder
	if err := json.NewDecoder(r.Body).Decode(&incoming); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}

	order, err := h.Orders.Place(r.Context(), userIDFrom(r), r.Header.Get("Idempotency-Key"), &incoming)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidOrder), errors.Is(err, service.ErrInvalidAddress):
			respondError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrDuplicateOrder):
			respondError(w, http.StatusConflict, err.Error())
		default:
			respondError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	respondJSON(w, http.StatusCreated, order)
}

func (h *Handler) myOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.ListUserOrders(userIDFrom(r))
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	respondJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.Get(mux.Vars(r)["id"], userIDFrom(r))
	if err != nil {
		respondOrderError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, order)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	qr, err := h.Orders.GetQRCode(mux.Vars(r)["id"], userIDFrom(r))
	if err != nil {
		respondOrderError(w, err)
		return
	}
	if len(qr) == 0 {
		respondError(w, http.StatusNotFound, "qr code not available")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(qr)
}

func respondOrderError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrOrderNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrNotOwner):
		respondError(w, http.StatusForbidden, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, err.Error())
	}
}

func respondJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, code int, message string) {
	respondJSON(w, code, map[string]string{"message": message})
}
