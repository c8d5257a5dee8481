package httpapi

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"foodbites/catalog-svc/internal/domain"
	"foodbites/catalog-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Foods service.FoodServiceInterface
}

func NewHandler(foods service.FoodServiceInterface) *Handler {
	return &Handler{Foods: foods}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.HandleFunc("/api/foods", h.listFoods).Methods("GET")
	r.HandleFunc("/api/foods", h.createFood).Methods("POST")
	r.HandleFunc("/api/foods/{id}", h.getFood).Methods("GET")
	r.HandleFunc("/api/foods/{id}", h.updateFood).Methods("PUT")
	r.HandleFunc("/api/foods/{id}", h.deleteFood).Methods("DELETE")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "catalog-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) listFoods(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")

	foods, err := h.Foods.List(r.Context(), search)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, foods)
}

func (h *Handler) createFood(w http.ResponseWriter, r *http.Request) {
	var food domain.Food
	if err := json.NewDecoder(r.Body).Decode(&food); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}

	if err := h.Foods.Create(r.Context(), &food); err != nil {
		if errors.Is(err, service.ErrInvalidFood) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, food)
}

func (h *Handler) getFood(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	food, err := h.Foods.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			respondError(w, http.StatusNotFound, "Food not found")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, food)
}

func (h *Handler) updateFood(w http.ResponseWriter, r *http.Request) {
	var food domain.Food
	if err := json.NewDecoder(r.Body).Decode(&food); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}
	food.ID = mux.Vars(r)["id"]

	if err := h.Foods.Update(r.Context(), &food); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidFood):
			respondError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrFoodNotFound):
			respondError(w, http.StatusNotFound, err.Error())
		default:
			respondError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	respondJSON(w, http.StatusOK, food)
}

func (h *Handler) deleteFood(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	affected, err := h.Foods.Delete(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if affected == 0 {
		respondError(w, http.StatusNotFound, "Food not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func respondJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, code int, message string) {
	respondJSON(w, code, map[string]string{"message": message})
}
