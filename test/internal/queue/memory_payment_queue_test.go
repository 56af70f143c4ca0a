package queue

import (
	"context"
	"testing"
	"time"

	"flight-booking/internal/model"
	"flight-booking/internal/queue"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryPaymentQueue_PublishAndSubscribe(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	q := queue.NewMemoryPaymentQueue(4)

	msgs, err := q.SubscribePayments(ctx)
	require.NoError(t, err)

	job := &model.PaymentJob{TransactionID: 42, Code: "TRX-AB12CD34EF", Amount: 500}
	require.NoError(t, q.PublishPayment(ctx, job))

	select {
	case msg := <-msgs:
		assert.Equal(t, 42, msg.Data.TransactionID)
		assert.Equal(t, "TRX-AB12CD34EF", msg.Data.Code)
		msg.Ack()
	case <-time.After(time.Second):
		t.Fatal("expected a delivery")
	}
}

func TestMemoryPaymentQueue_NackRequeues(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	q := queue.NewMemoryPaymentQueue(4)

	msgs, err := q.SubscribePayments(ctx)
	require.NoError(t, err)

	job := &model.PaymentJob{TransactionID: 7, Code: "TRX-QQ11WW22EE"}
	require.NoError(t, q.PublishPayment(ctx, job))

	first := <-msgs
	first.Nack(true)

	select {
	case second := <-msgs:
		assert.Equal(t, 7, second.Data.TransactionID)
		second.Ack()
	case <-time.After(time.Second):
		t.Fatal("expected the nacked job to come back")
	}
}

func TestMemoryPaymentQueue_SubscribeStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	q := queue.NewMemoryPaymentQueue(1)
	msgs, err := q.SubscribePayments(ctx)
	require.NoError(t, err)

	cancel()

	select {
	case _, open := <-msgs:
		assert.False(t, open, "channel should close after cancel")
	case <-time.After(time.Second):
		t.Fatal("expected the delivery channel to close")
	}
}

func TestMemoryPaymentQueue_PublishRespectsContext(t *testing.T) {
	q := queue.NewMemoryPaymentQueue(1)

	require.NoError(t, q.PublishPayment(context.Background(), &model.PaymentJob{TransactionID: 1}))

	// Buffer is full and nobody is consuming; a cancelled context must unblock.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := q.PublishPayment(ctx, &model.PaymentJob{TransactionID: 2})
	assert.ErrorIs(t, err, context.Canceled)
}
