package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"flight-booking/internal/handler"
	"flight-booking/internal/model"
	apperrors "flight-booking/pkg/app_errors"
	serviceMocks "flight-booking/test/internal/mocks/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupFlightTestRouter(mockService *serviceMocks.FlightServiceMock) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handler.NewFlightHandler(mockService).RegisterRoutes(router)
	return router
}

func TestSearchFlights(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := serviceMocks.NewFlightServiceMock()
		router := setupFlightTestRouter(mockService)

		results := []model.SearchResult{
			{Flight: model.Flight{ID: 1, FlightNumber: "GA-204"}},
			{Flight: model.Flight{ID: 2, FlightNumber: "QZ-110"}},
		}
		mockService.On("Search", mock.Anything, mock.Anything).Return(results, nil).Once()

		req := createJSONHTTPRequest("POST", "/api/v1/flights/search", model.SearchRequest{
			DepartureAirportID: 20,
			ArrivalAirportID:   30,
			DepartureDate:      "2026-09-03",
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Status       string               `json:"status"`
			Flights      []model.SearchResult `json:"flights"`
			TotalFlights int                  `json:"total_flights"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "success", body.Status)
		assert.Equal(t, 2, body.TotalFlights)
		assert.Len(t, body.Flights, 2)

		mockService.AssertExpectations(t)
	})

	t.Run("Failed - missing required fields", func(t *testing.T) {
		mockService := serviceMocks.NewFlightServiceMock()
		router := setupFlightTestRouter(mockService)

		req := createJSONHTTPRequest("POST", "/api/v1/flights/search", map[string]interface{}{
			"departure_airport_id": 20,
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
	})

	t.Run("Failed - validation error carries the field", func(t *testing.T) {
		mockService := serviceMocks.NewFlightServiceMock()
		router := setupFlightTestRouter(mockService)

		mockService.On("Search", mock.Anything, mock.Anything).
			Return(nil, apperrors.NewValidationError("departure_date", "must be formatted YYYY-MM-DD")).Once()

		req := createJSONHTTPRequest("POST", "/api/v1/flights/search", model.SearchRequest{
			DepartureAirportID: 20,
			ArrivalAirportID:   30,
			DepartureDate:      "03-09-2026",
		})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "departure_date")
	})
}

func TestGetFlight(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := serviceMocks.NewFlightServiceMock()
		router := setupFlightTestRouter(mockService)

		mockService.On("GetByID", mock.Anything, 1).
			Return(&model.Flight{ID: 1, FlightNumber: "GA-204"}, nil).Once()

		req, _ := http.NewRequest("GET", "/api/v1/flights/1", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "GA-204")
	})

	t.Run("Failed - not found", func(t *testing.T) {
		mockService := serviceMocks.NewFlightServiceMock()
		router := setupFlightTestRouter(mockService)

		mockService.On("GetByID", mock.Anything, 404).
			Return(nil, apperrors.ErrFlightNotFound).Once()

		req, _ := http.NewRequest("GET", "/api/v1/flights/404", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Failed - non-numeric id", func(t *testing.T) {
		mockService := serviceMocks.NewFlightServiceMock()
		router := setupFlightTestRouter(mockService)

		req, _ := http.NewRequest("GET", "/api/v1/flights/abc", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
