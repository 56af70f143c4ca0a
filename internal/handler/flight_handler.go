package handler

import (
	"net/http"
	"strconv"

	"flight-booking/internal/model"
	"flight-booking/internal/service"

	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service service.FlightService
}

func NewFlightHandler(service service.FlightService) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.POST("flights/search", h.Search)
		router.GET("flights/:id", h.GetFlight)
	}
}

func (h *FlightHandler) Search(c *gin.Context) {
	var req model.SearchRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	results, err := h.service.Search(c.Request.Context(), req)
	if err != nil {
		handleError(c, err, "Search")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":        "success",
		"flights":       results,
		"total_flights": len(results),
	})
}

func (h *FlightHandler) GetFlight(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid flight id"})
		return
	}

	flight, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		handleError(c, err, "GetFlight")
		return
	}

	c.JSON(http.StatusOK, flight)
}
