package handler

import (
	"net/http"
	"strconv"

	"flight-booking/internal/model"
	"flight-booking/internal/service"

	"github.com/gin-gonic/gin"
)

type TransactionHandler struct {
	service service.BookingService
}

func NewTransactionHandler(service service.BookingService) *TransactionHandler {
	return &TransactionHandler{service: service}
}

func (h *TransactionHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.POST("transactions", h.CreateTransaction)
		router.GET("transactions/:id", h.GetTransaction)
		router.POST("transactions/:id/payment", h.UpdatePayment)
	}
}

func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req model.CreateTransactionRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	txn, err := h.service.CreateBooking(c.Request.Context(), req)
	if err != nil {
		handleError(c, err, "CreateTransaction")
		return
	}

	c.JSON(http.StatusCreated, txn)
}

func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction id"})
		return
	}

	txn, err := h.service.GetTransaction(c.Request.Context(), id)
	if err != nil {
		handleError(c, err, "GetTransaction")
		return
	}

	c.JSON(http.StatusOK, txn)
}

func (h *TransactionHandler) UpdatePayment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid transaction id"})
		return
	}

	var req model.UpdatePaymentRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	txn, err := h.service.UpdatePaymentStatus(c.Request.Context(), id,
		model.PaymentStatus(req.PaymentStatus), req.PaymentReference)
	if err != nil {
		handleError(c, err, "UpdatePayment")
		return
	}

	c.JSON(http.StatusOK, txn)
}
