package queue

import (
	"context"

	"flight-booking/internal/model"
	"flight-booking/internal/queue"

	"github.com/stretchr/testify/mock"
)

type PaymentQueueMock struct {
	mock.Mock
}

func NewPaymentQueueMock() *PaymentQueueMock {
	return &PaymentQueueMock{}
}

func (m *PaymentQueueMock) PublishPayment(ctx context.Context, job *model.PaymentJob) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *PaymentQueueMock) SubscribePayments(ctx context.Context) (<-chan queue.Delivery, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan queue.Delivery), args.Error(1)
}
