package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpapi "foodbites/auth-svc/internal/api/http"
	"foodbites/auth-svc/internal/domain"
	"foodbites/auth-svc/internal/mocks"
	"foodbites/auth-svc/internal/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const clientURL = "http://localhost:3000"

func newTestRouter(auth *mocks.AuthServiceInterface, google *mocks.GoogleVerifier) *mux.Router {
	handler := httpapi.NewHandler(auth, google, clientURL, testSecret)
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func bearerToken(t *testing.T, userID string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	assert.NoError(t, err)
	return "Bearer " + signed
}

func TestHandler_register(t *testing.T) {
	tests := []struct {
		name       string
		registerFn func(auth *mocks.AuthServiceInterface)
		wantStatus int
	}{
		{
			name: "created",
			registerFn: func(auth *mocks.AuthServiceInterface) {
				auth.On("Register", "alice", "alice@example.com", "secret123").Return("tok", nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "duplicate",
			registerFn: func(auth *mocks.AuthServiceInterface) {
				auth.On("Register", "alice", "alice@example.com", "secret123").Return("", service.ErrDuplicateUser)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "missing_fields",
			registerFn: func(auth *mocks.AuthServiceInterface) {
				auth.On("Register", "alice", "alice@example.com", "secret123").Return("", service.ErrMissingFields)
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			auth := mocks.NewAuthServiceInterface(t)
			tc.registerFn(auth)

			body := `{"username":"alice","email":"alice@example.com","password":"secret123"}`
			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(body))
			rec := httptest.NewRecorder()

			newTestRouter(auth, mocks.NewGoogleVerifier(t)).ServeHTTP(rec, req)
			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

func TestHandler_login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		auth := mocks.NewAuthServiceInterface(t)
		auth.On("Login", "alice", "secret123").Return("tok", nil)

		body := `{"identifier":"alice","password":"secret123"}`
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(body))
		rec := httptest.NewRecorder()

		newTestRouter(auth, mocks.NewGoogleVerifier(t)).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]string
		json.NewDecoder(rec.Body).Decode(&resp)
		assert.Equal(t, "tok", resp["token"])
	})

	t.Run("bad_credentials", func(t *testing.T) {
		auth := mocks.NewAuthServiceInterface(t)
		auth.On("Login", "alice", "nope").Return("", service.ErrInvalidCredentials)

		body := `{"identifier":"alice","password":"nope"}`
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(body))
		rec := httptest.NewRecorder()

		newTestRouter(auth, mocks.NewGoogleVerifier(t)).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		var resp map[string]string
		json.NewDecoder(rec.Body).Decode(&resp)
		assert.Equal(t, service.ErrInvalidCredentials.Error(), resp["message"])
	})
}

func TestHandler_googleFlow(t *testing.T) {
	t.Run("redirect_sets_state", func(t *testing.T) {
		google := mocks.NewGoogleVerifier(t)
		google.On("AuthURL", mock.AnythingOfType("string")).Return("https://accounts.google.com/o/oauth2/auth?state=x")

		req := httptest.NewRequest(http.MethodGet, "/api/auth/google", nil)
		rec := httptest.NewRecorder()

		newTestRouter(mocks.NewAuthServiceInterface(t), google).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)

		cookies := rec.Result().Cookies()
		assert.NotEmpty(t, cookies)
		assert.Equal(t, "oauth_state", cookies[0].Name)
	})

	t.Run("callback_redirects_with_token", func(t *testing.T) {
		auth := mocks.NewAuthServiceInterface(t)
		google := mocks.NewGoogleVerifier(t)

		profile := domain.GoogleProfile{Email: "alice@example.com", Name: "Alice"}
		google.On("Exchange", mock.Anything, "code-1").Return(profile, nil)
		auth.On("GoogleLogin", profile).Return("tok", nil)

		req := httptest.NewRequest(http.MethodGet, "/api/auth/google/callback?state=state-1&code=code-1", nil)
		req.AddCookie(&http.Cookie{Name: "oauth_state", Value: "state-1"})
		rec := httptest.NewRecorder()

		newTestRouter(auth, google).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
		assert.Equal(t, clientURL+"/oauth-success?token=tok", rec.Header().Get("Location"))
	})

	t.Run("callback_rejects_state_mismatch", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/google/callback?state=evil&code=code-1", nil)
		req.AddCookie(&http.Cookie{Name: "oauth_state", Value: "state-1"})
		rec := httptest.NewRecorder()

		newTestRouter(mocks.NewAuthServiceInterface(t), mocks.NewGoogleVerifier(t)).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_profile(t *testing.T) {
	t.Run("requires_token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/users/profile", nil)
		rec := httptest.NewRecorder()

		newTestRouter(mocks.NewAuthServiceInterface(t), mocks.NewGoogleVerifier(t)).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("returns_user", func(t *testing.T) {
		auth := mocks.NewAuthServiceInterface(t)
		auth.On("Profile", "user-1").Return(&domain.User{ID: "user-1", Username: "alice"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/users/profile", nil)
		req.Header.Set("Authorization", bearerToken(t, "user-1"))
		rec := httptest.NewRecorder()

		newTestRouter(auth, mocks.NewGoogleVerifier(t)).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)

		var user domain.User
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&user))
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("change_password_wrong_old", func(t *testing.T) {
		auth := mocks.NewAuthServiceInterface(t)
		auth.On("ChangePassword", "user-1", "guess", "new-pass").Return(service.ErrWrongPassword)

		body := `{"oldPassword":"guess","newPassword":"new-pass"}`
		req := httptest.NewRequest(http.MethodPut, "/api/users/profile/password", bytes.NewBufferString(body))
		req.Header.Set("Authorization", bearerToken(t, "user-1"))
		rec := httptest.NewRecorder()

		newTestRouter(auth, mocks.NewGoogleVerifier(t)).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("delete_account", func(t *testing.T) {
		auth := mocks.NewAuthServiceInterface(t)
		auth.On("DeleteAccount", "user-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/api/users/profile", nil)
		req.Header.Set("Authorization", bearerToken(t, "user-1"))
		rec := httptest.NewRecorder()

		newTestRouter(auth, mocks.NewGoogleVerifier(t)).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}
