package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrFlightNotFound      = errors.New("flight not found")
	ErrClassNotFound       = errors.New("flight class not found")
	ErrSeatNotFound        = errors.New("seat not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrPromoInvalid        = errors.New("promo code invalid")
	ErrSeatConflict        = errors.New("seat no longer available")
	ErrSeatOccupied        = errors.New("seat is attached to a passenger")
	ErrInvalidTransition   = errors.New("invalid payment status transition")
	ErrPaymentFailed       = errors.New("payment processing failed")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInternalServerError = errors.New("internal server error")
)

// ValidationError carries field-level detail for bad requests.
// errors.Is(err, ErrInvalidInput) matches, so handlers need a single branch.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

func NewValidationError(field, msg string) error {
	return &ValidationError{Field: field, Msg: msg}
}
