package service

import (
	"context"
	"strings"
	"time"

	"flight-booking/internal/model"
	apperrors "flight-booking/pkg/app_errors"

	"github.com/google/uuid"
)

// PaymentGateway charges a booking and returns the gateway's payment
// reference. There is no real gateway behind this system; the simulated
// implementation stands in for one.
type PaymentGateway interface {
	Charge(ctx context.Context, job *model.PaymentJob) (string, error)
}

// SimulatedGateway approves every charge after a fixed processing latency.
// If the context deadline expires first the charge fails with
// ErrPaymentFailed, which is how gateway timeouts reach the worker.
type SimulatedGateway struct {
	latency time.Duration
}

func NewSimulatedGateway(latency time.Duration) PaymentGateway {
	return &SimulatedGateway{latency: latency}
}

func (g *SimulatedGateway) Charge(ctx context.Context, job *model.PaymentJob) (string, error) {
	select {
	case <-time.After(g.latency):
		raw := strings.ReplaceAll(uuid.NewString(), "-", "")
		return "PAY-" + strings.ToUpper(raw[:12]), nil
	case <-ctx.Done():
		return "", apperrors.ErrPaymentFailed
	}
}

var _ PaymentGateway = (*SimulatedGateway)(nil)
