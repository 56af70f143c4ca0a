package handler

import (
	"net/http"
	"strconv"

	"flight-booking/internal/model"
	"flight-booking/internal/service"

	"github.com/gin-gonic/gin"
)

type SeatHandler struct {
	service service.SeatService
}

func NewSeatHandler(service service.SeatService) *SeatHandler {
	return &SeatHandler{service: service}
}

func (h *SeatHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("flight-seats/flight/:flightId", h.ListByFlight)
		router.POST("flight-seats", h.CreateSeats)
		router.PUT("flight-seats/resize", h.ResizeSeats)
		router.POST("flight-seats/update-availability", h.UpdateAvailability)
	}
}

type CreateSeatsRequest struct {
	FlightID   int    `json:"flight_id" binding:"required"`
	ClassType  string `json:"class_type" binding:"required"`
	TotalSeats int    `json:"total_seats" binding:"required"`
}

type ResizeSeatsRequest struct {
	FlightID   int    `json:"flight_id" binding:"required"`
	ClassType  string `json:"class_type" binding:"required"`
	TotalSeats int    `json:"total_seats" binding:"required"`
}

type UpdateAvailabilityRequest struct {
	SeatIDs     []int `json:"seat_ids" binding:"required"`
	IsAvailable *bool `json:"is_available" binding:"required"`
}

func (h *SeatHandler) ListByFlight(c *gin.Context) {
	flightID, err := strconv.Atoi(c.Param("flightId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid flight id"})
		return
	}

	seats, err := h.service.ListByFlight(c.Request.Context(), flightID)
	if err != nil {
		handleError(c, err, "ListByFlight")
		return
	}

	responses := make([]model.SeatResponse, 0, len(seats))
	for _, seat := range seats {
		responses = append(responses, seat.ToResponse())
	}
	c.JSON(http.StatusOK, responses)
}

func (h *SeatHandler) CreateSeats(c *gin.Context) {
	var req CreateSeatsRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	err := h.service.CreateSeats(c.Request.Context(), req.FlightID, model.ClassType(req.ClassType), req.TotalSeats)
	if err != nil {
		handleError(c, err, "CreateSeats")
		return
	}
	c.Status(http.StatusCreated)
}

func (h *SeatHandler) ResizeSeats(c *gin.Context) {
	var req ResizeSeatsRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	err := h.service.ResizeSeats(c.Request.Context(), req.FlightID, model.ClassType(req.ClassType), req.TotalSeats)
	if err != nil {
		handleError(c, err, "ResizeSeats")
		return
	}
	c.Status(http.StatusOK)
}

func (h *SeatHandler) UpdateAvailability(c *gin.Context) {
	var req UpdateAvailabilityRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	err := h.service.BulkSetAvailability(c.Request.Context(), req.SeatIDs, *req.IsAvailable)
	if err != nil {
		handleError(c, err, "UpdateAvailability")
		return
	}
	c.Status(http.StatusOK)
}
