package services

import (
	"context"

	"flight-booking/internal/model"

	"github.com/stretchr/testify/mock"
)

type PromoServiceMock struct {
	mock.Mock
}

func NewPromoServiceMock() *PromoServiceMock {
	return &PromoServiceMock{}
}

func (m *PromoServiceMock) Resolve(ctx context.Context, code string) (*model.PromoCode, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PromoCode), args.Error(1)
}

func (m *PromoServiceMock) Apply(amount float64, promo *model.PromoCode) float64 {
	args := m.Called(amount, promo)
	return args.Get(0).(float64)
}
