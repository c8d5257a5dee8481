package tests

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "foodbites/analytics-svc/internal/api/http"
	"foodbites/analytics-svc/internal/domain"
	"foodbites/analytics-svc/internal/mocks"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

func newTestRouter(analytics *mocks.AnalyticsInterface) *mux.Router {
	handler := httpapi.NewHandler(analytics)
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func TestHandler_getTopToday(t *testing.T) {
	t.Run("returns_list", func(t *testing.T) {
		analytics := mocks.NewAnalyticsInterface(t)
		analytics.On("TopToday").Return([]domain.FoodAnalytics{
			{FoodID: "food-1", FoodName: "Cheese Deluxe", Category: "burger", Score: 5},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/analytics/popular/today", nil)
		rec := httptest.NewRecorder()

		newTestRouter(analytics).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)

		var got []domain.FoodAnalytics
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Len(t, got, 1)
		assert.Equal(t, "food-1", got[0].FoodID)
	})

	t.Run("error_degrades_to_empty_list", func(t *testing.T) {
		analytics := mocks.NewAnalyticsInterface(t)
		analytics.On("TopToday").Return(nil, errors.New("redis down"))

		req := httptest.NewRequest(http.MethodGet, "/api/analytics/popular/today", nil)
		rec := httptest.NewRecorder()

		newTestRouter(analytics).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})
}

func TestHandler_getTopAllTime(t *testing.T) {
	analytics := mocks.NewAnalyticsInterface(t)
	analytics.On("TopAllTime").Return([]domain.FoodAnalytics{
		{FoodID: "food-2", FoodName: "Dragon Roll", Category: "sushi", Score: 42, OrderCount: 42},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/analytics/popular/alltime", nil)
	rec := httptest.NewRecorder()

	newTestRouter(analytics).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	var got []domain.FoodAnalytics
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, 42, got[0].OrderCount)
}
