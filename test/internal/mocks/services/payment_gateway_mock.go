package services

import (
	"context"

	"flight-booking/internal/model"

	"github.com/stretchr/testify/mock"
)

type PaymentGatewayMock struct {
	mock.Mock
}

func NewPaymentGatewayMock() *PaymentGatewayMock {
	return &PaymentGatewayMock{}
}

func (m *PaymentGatewayMock) Charge(ctx context.Context, job *model.PaymentJob) (string, error) {
	args := m.Called(ctx, job)
	return args.String(0), args.Error(1)
}
