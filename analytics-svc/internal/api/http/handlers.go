package httpapi

import (
	"encoding/json"
	"net/http"

	"foodbites/analytics-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Analytics service.AnalyticsInterface
}

func NewHandler(svc service.AnalyticsInterface) *Handler {
	return &Handler{Analytics: svc}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}).Methods("GET")
	r.HandleFunc("/api/analytics/popular/today", h.getTopToday).Methods("GET")
	r.HandleFunc("/api/analytics/popular/alltime", h.getTopAllTime).Methods("GET")
}

// Popularity reads degrade to an empty list instead of erroring; the client
// renders nothing rather than a failure state.
func (h *Handler) getTopToday(w http.ResponseWriter, r *http.Request) {
	data, err := h.Analytics.TopToday()
	if err != nil || data == nil {
		json.NewEncoder(w).Encode([]interface{}{})
		return
	}
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) getTopAllTime(w http.ResponseWriter, r *http.Request) {
	data, err := h.Analytics.TopAllTime()
	if err != nil || data == nil {
		json.NewEncoder(w).Encode([]interface{}{})
		return
	}
	json.NewEncoder(w).Encode(data)
}
