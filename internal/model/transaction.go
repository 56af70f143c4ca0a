package model

import "time"

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed, PaymentStatusRefunded:
		return true
	}
	return false
}

// CanTransitionTo reports whether the payment state machine allows moving to
// target. Re-applying the current status is allowed so status updates stay
// idempotent.
func (s PaymentStatus) CanTransitionTo(target PaymentStatus) bool {
	if s == target {
		return true
	}
	transitions := map[PaymentStatus][]PaymentStatus{
		PaymentStatusPending:  {PaymentStatusPaid, PaymentStatusFailed, PaymentStatusRefunded},
		PaymentStatusPaid:     {PaymentStatusRefunded},
		PaymentStatusFailed:   {},
		PaymentStatusRefunded: {},
	}

	allowed, ok := transitions[s]
	if !ok {
		return false
	}
	for _, status := range allowed {
		if status == target {
			return true
		}
	}
	return false
}

// ReleasesSeats reports whether entering this status hands the transaction's
// seats back to inventory.
func (s PaymentStatus) ReleasesSeats() bool {
	return s == PaymentStatusFailed || s == PaymentStatusRefunded
}

// Transaction is a booking: a flight-class selection, its passengers with
// assigned seats, and the payment outcome.
type Transaction struct {
	ID               int           `json:"id" db:"id"`
	Code             string        `json:"code" db:"code"`
	FlightID         int           `json:"flight_id" db:"flight_id"`
	FlightClassID    int           `json:"flight_class_id" db:"flight_class_id"`
	PromoCodeID      *int          `json:"promo_code_id,omitempty" db:"promo_code_id"`
	PaymentStatus    PaymentStatus `json:"payment_status" db:"payment_status"`
	PaymentMethod    string        `json:"payment_method" db:"payment_method"`
	PaymentReference *string       `json:"payment_reference,omitempty" db:"payment_reference"`
	Subtotal         float64       `json:"subtotal" db:"subtotal"`
	GrandTotal       float64       `json:"grand_total" db:"grand_total"`
	CreatedAt        time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at" db:"updated_at"`

	Passengers []Passenger `json:"passengers" db:"-"`
	Promo      *PromoCode  `json:"promo,omitempty" db:"-"`
}

type Passenger struct {
	ID            int       `json:"id" db:"id"`
	TransactionID int       `json:"transaction_id" db:"transaction_id"`
	SeatID        int       `json:"seat_id" db:"seat_id"`
	FirstName     string    `json:"first_name" db:"first_name"`
	LastName      string    `json:"last_name" db:"last_name"`
	Email         string    `json:"email" db:"email"`
	Phone         string    `json:"phone" db:"phone"`
	DateOfBirth   time.Time `json:"date_of_birth" db:"date_of_birth"`

	Seat *Seat `json:"seat,omitempty" db:"-"`
}

type PassengerInput struct {
	SeatID      int    `json:"seat_id" binding:"required"`
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone" binding:"required"`
	DateOfBirth string `json:"date_of_birth" binding:"required"`
}

type CreateTransactionRequest struct {
	FlightID       int              `json:"flight_id" binding:"required"`
	ClassType      string           `json:"class_type" binding:"required"`
	Passengers     []PassengerInput `json:"passengers" binding:"required"`
	PaymentMethod  string           `json:"payment_method" binding:"required"`
	PaymentDetails string           `json:"payment_details"`
	PromoCode      string           `json:"promo_code"`
}

type UpdatePaymentRequest struct {
	PaymentStatus    string `json:"payment_status" binding:"required"`
	PaymentReference string `json:"payment_reference"`
}

// PaymentJob is the unit of work handed to the payment worker after a booking
// is persisted.
type PaymentJob struct {
	TransactionID  int    `json:"transaction_id"`
	Code           string `json:"code"`
	PaymentMethod  string `json:"payment_method"`
	PaymentDetails string `json:"payment_details"`
	Amount         float64 `json:"amount"`
}
