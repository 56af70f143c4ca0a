package model

import (
	"testing"

	"flight-booking/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestPaymentStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from    model.PaymentStatus
		to      model.PaymentStatus
		allowed bool
	}{
		{model.PaymentStatusPending, model.PaymentStatusPaid, true},
		{model.PaymentStatusPending, model.PaymentStatusFailed, true},
		{model.PaymentStatusPending, model.PaymentStatusRefunded, true},
		{model.PaymentStatusPaid, model.PaymentStatusRefunded, true},
		{model.PaymentStatusPaid, model.PaymentStatusPending, false},
		{model.PaymentStatusPaid, model.PaymentStatusFailed, false},
		{model.PaymentStatusFailed, model.PaymentStatusPaid, false},
		{model.PaymentStatusFailed, model.PaymentStatusPending, false},
		{model.PaymentStatusRefunded, model.PaymentStatusPaid, false},
		// Re-applying the current status is always allowed.
		{model.PaymentStatusPending, model.PaymentStatusPending, true},
		{model.PaymentStatusPaid, model.PaymentStatusPaid, true},
		{model.PaymentStatusFailed, model.PaymentStatusFailed, true},
		{model.PaymentStatusRefunded, model.PaymentStatusRefunded, true},
	}

	for _, tc := range cases {
		got := tc.from.CanTransitionTo(tc.to)
		assert.Equal(t, tc.allowed, got, "%s -> %s", tc.from, tc.to)
	}
}

func TestPaymentStatus_ReleasesSeats(t *testing.T) {
	assert.False(t, model.PaymentStatusPending.ReleasesSeats())
	assert.False(t, model.PaymentStatusPaid.ReleasesSeats())
	assert.True(t, model.PaymentStatusFailed.ReleasesSeats())
	assert.True(t, model.PaymentStatusRefunded.ReleasesSeats())
}

func TestPaymentStatus_IsValid(t *testing.T) {
	assert.True(t, model.PaymentStatusPending.IsValid())
	assert.False(t, model.PaymentStatus("settled").IsValid())
	assert.False(t, model.PaymentStatus("").IsValid())
}

func TestSeat_SeatName(t *testing.T) {
	seat := &model.Seat{Row: 12, Column: "A"}
	assert.Equal(t, "12A", seat.SeatName())

	pos := model.SeatPosition{Row: 3, Column: "F"}
	assert.Equal(t, "3F", pos.Name())
}

func TestClassType_IsValid(t *testing.T) {
	assert.True(t, model.ClassEconomy.IsValid())
	assert.True(t, model.ClassBusiness.IsValid())
	assert.True(t, model.ClassFirst.IsValid())
	assert.False(t, model.ClassType("premium").IsValid())
}
