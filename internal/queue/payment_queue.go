package queue

import (
	"context"

	"flight-booking/internal/model"
)

type Delivery struct {
	Data *model.PaymentJob
	Ack  func()
	Nack func(requeue bool)
}

// PaymentQueue decouples booking creation from payment processing. Bookings
// publish a job; the payment worker consumes it and applies the idempotent
// status update, so a client that times out and the server's eventual result
// reconcile through the transaction row rather than the request.
type PaymentQueue interface {
	PublishPayment(ctx context.Context, job *model.PaymentJob) error
	SubscribePayments(ctx context.Context) (<-chan Delivery, error)
}

// MemoryPaymentQueue is a channel-backed queue for single-process runs and
// tests.
type MemoryPaymentQueue struct {
	ch chan *model.PaymentJob
}

func NewMemoryPaymentQueue(bufferSize int) PaymentQueue {
	return &MemoryPaymentQueue{
		ch: make(chan *model.PaymentJob, bufferSize),
	}
}

func (q *MemoryPaymentQueue) PublishPayment(ctx context.Context, job *model.PaymentJob) error {
	select {
	case q.ch <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *MemoryPaymentQueue) SubscribePayments(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case job, ok := <-q.ch:
				if !ok {
					return
				}

				out <- Delivery{
					Data: job,
					Ack:  func() {},
					Nack: func(requeue bool) {
						if requeue {
							q.ch <- job
						}
					},
				}
			}
		}
	}()

	return out, nil
}
