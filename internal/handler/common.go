package handler

import (
	"errors"
	"net/http"

	apperrors "flight-booking/pkg/app_errors"
	"flight-booking/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func BindJson(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

func BindUri(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindUri(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

// handleError maps domain errors to HTTP responses with a message the caller
// can act on.
func handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))

	var validation *apperrors.ValidationError
	switch {
	case errors.As(err, &validation):
		log.Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.Msg, "field": validation.Field})
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrFlightNotFound),
		errors.Is(err, apperrors.ErrClassNotFound),
		errors.Is(err, apperrors.ErrSeatNotFound),
		errors.Is(err, apperrors.ErrTransactionNotFound):
		log.Warn("Not found")
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrSeatConflict):
		log.Warn("Seat conflict")
		c.JSON(http.StatusConflict, gin.H{"error": "seat no longer available, please reselect"})
	case errors.Is(err, apperrors.ErrSeatOccupied):
		log.Warn("Seat occupied")
		c.JSON(http.StatusConflict, gin.H{"error": "a seat in range is attached to a passenger, reassign first"})
	case errors.Is(err, apperrors.ErrInvalidTransition):
		log.Warn("Invalid payment transition")
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrPromoInvalid):
		log.Warn("Promo invalid")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "promo code is invalid, expired or already used"})
	case errors.Is(err, apperrors.ErrPaymentFailed):
		log.Warn("Payment failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
