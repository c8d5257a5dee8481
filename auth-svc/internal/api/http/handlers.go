package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"foodbites/auth-svc/internal/service"
)

const stateCookie = "oauth_state"

type Handler struct {
	Auth      service.AuthServiceInterface
	Google    GoogleVerifier
	ClientURL string
	JWTSecret string
}

func NewHandler(auth service.AuthServiceInterface, google GoogleVerifier, clientURL, jwtSecret string) *Handler {
	return &Handler{Auth: auth, Google: google, ClientURL: clientURL, JWTSecret: jwtSecret}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.HandleFunc("/api/auth/register", h.register).Methods("POST")
	r.HandleFunc("/api/auth/login", h.login).Methods("POST")
	r.HandleFunc("/api/auth/google", h.googleRedirect).Methods("GET")
	r.HandleFunc("/api/auth/google/callback", h.googleCallback).Methods("GET")

	protected := r.NewRoute().Subrouter()
	protected.Use(AuthMiddleware(h.JWTSecret))
	protected.HandleFunc("/api/users/profile", h.getProfile).Methods("GET")
	protected.HandleFunc("/api/users/profile", h.updateProfile).Methods("PUT")
	protected.HandleFunc("/api/users/profile/password", h.changePassword).Methods("PUT")
	protected.HandleFunc("/api/users/profile", h.deleteAccount).Methods("DELETE")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "auth-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}

	token, err := h.Auth.Register(req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			respondError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrDuplicateUser):
			respondError(w, http.StatusConflict, err.Error())
		default:
			respondError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{"token": token})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Identifier string `json:"identifier"`
		Password   string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}

	token, err := h.Auth.Login(req.Identifier, req.Password)
	if err != nil {
		respondError(w, http.StatusUnauthorized, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (h *Handler) googleRedirect(w http.ResponseWriter, r *http.Request) {
	state := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookie,
		Value:    state,
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
	})
	http.Redirect(w, r, h.Google.AuthURL(state), http.StatusTemporaryRedirect)
}

func (h *Handler) googleCallback(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(stateCookie)
	if err != nil || cookie.Value == "" || cookie.Value != r.URL.Query().Get("state") {
		respondError(w, http.StatusBadRequest, "invalid oauth state")
		return
	}

	profile, err := h.Google.Exchange(r.Context(), r.URL.Query().Get("code"))
	if err != nil {
		respondError(w, http.StatusUnauthorized, err.Error())
		return
	}

	token, err := h.Auth.GoogleLogin(profile)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	http.Redirect(w, r, h.ClientURL+"/oauth-success?token="+token, http.StatusTemporaryRedirect)
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	user, err := h.Auth.Profile(userIDFrom(r))
	if err != nil {
		respondUserError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}

	user, err := h.Auth.UpdateProfile(userIDFrom(r), req.Username, req.Email)
	if err != nil {
		respondUserError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		OldPassword string `json:"oldPassword"`
		NewPassword string `json:"newPassword"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}

	if err := h.Auth.ChangePassword(userIDFrom(r), req.OldPassword, req.NewPassword); err != nil {
		respondUserError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Password updated"})
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	if err := h.Auth.DeleteAccount(userIDFrom(r)); err != nil {
		respondUserError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func respondUserError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrDuplicateUser):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrWrongPassword):
		respondError(w, http.StatusBadRequest, err.Error())
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
