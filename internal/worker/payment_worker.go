package worker

import (
	"context"
	"errors"
	"time"

	"flight-booking/internal/model"
	"flight-booking/internal/queue"
	"flight-booking/internal/service"
	apperrors "flight-booking/pkg/app_errors"
	"flight-booking/pkg/logger"

	"go.uber.org/zap"
)

// PaymentWorker drains payment jobs, runs the gateway with a deadline, and
// applies the outcome through the idempotent status update. A client that
// already gave up on its request converges on the same transaction row.
type PaymentWorker interface {
	Start(ctx context.Context) error
}

type PaymentWorkerImpl struct {
	booking        service.BookingService
	gateway        service.PaymentGateway
	queue          queue.PaymentQueue
	gatewayTimeout time.Duration
}

func NewPaymentWorker(booking service.BookingService, gateway service.PaymentGateway, q queue.PaymentQueue, gatewayTimeout time.Duration) PaymentWorker {
	return &PaymentWorkerImpl{
		booking:        booking,
		gateway:        gateway,
		queue:          q,
		gatewayTimeout: gatewayTimeout,
	}
}

func (w *PaymentWorkerImpl) Start(ctx context.Context) error {
	msgs, err := w.queue.SubscribePayments(ctx)
	if err != nil {
		return err
	}

	go func() {
		for msg := range msgs {
			w.process(ctx, msg)
		}
	}()
	return nil
}

func (w *PaymentWorkerImpl) process(ctx context.Context, msg queue.Delivery) {
	job := msg.Data
	log := logger.WithComponent("payment_worker").With(
		zap.Int("transaction_id", job.TransactionID), zap.String("code", job.Code))

	chargeCtx, cancel := context.WithTimeout(ctx, w.gatewayTimeout)
	reference, chargeErr := w.gateway.Charge(chargeCtx, job)
	cancel()

	status := model.PaymentStatusPaid
	if chargeErr != nil {
		log.Warn("charge failed", zap.Error(chargeErr))
		status = model.PaymentStatusFailed
		reference = ""
	}

	_, err := w.booking.UpdatePaymentStatus(ctx, job.TransactionID, status, reference)
	switch {
	case err == nil:
		log.Info("payment settled", zap.String("status", string(status)))
		msg.Ack()
	case errors.Is(err, apperrors.ErrInvalidTransition):
		// Redelivered job for a transaction that already settled.
		log.Info("payment already settled, dropping job")
		msg.Ack()
	case errors.Is(err, apperrors.ErrTransactionNotFound):
		log.Warn("transaction missing, dropping job")
		msg.Ack()
	default:
		log.Error("failed to update payment status, will retry", zap.Error(err))
		msg.Nack(true)
	}
}

var _ PaymentWorker = (*PaymentWorkerImpl)(nil)
