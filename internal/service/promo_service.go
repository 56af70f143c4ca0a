package service

import (
	"context"
	"time"

	"flight-booking/internal/model"
	"flight-booking/internal/repository"
	apperrors "flight-booking/pkg/app_errors"
)

// PromoService validates promo codes and applies their discount to an amount.
type PromoService interface {
	Resolve(ctx context.Context, code string) (*model.PromoCode, error)
	Apply(amount float64, promo *model.PromoCode) float64
}

type PromoServiceImpl struct {
	repo repository.PromoRepository
	now  func() time.Time
}

func NewPromoService(repo repository.PromoRepository) PromoService {
	return &PromoServiceImpl{repo: repo, now: time.Now}
}

// Resolve looks the code up case-insensitively and rejects expired or already
// consumed codes. Usage is a single global flag per code.
func (s *PromoServiceImpl) Resolve(ctx context.Context, code string) (*model.PromoCode, error) {
	promo, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if promo.IsExpired(s.now()) {
		return nil, apperrors.ErrPromoInvalid
	}
	if promo.IsUsed {
		return nil, apperrors.ErrPromoInvalid
	}
	return promo, nil
}

// Apply returns the discounted amount, never below zero. A nil promo leaves
// the amount unchanged.
func (s *PromoServiceImpl) Apply(amount float64, promo *model.PromoCode) float64 {
	if promo == nil {
		return amount
	}

	var total float64
	switch promo.DiscountType {
	case model.DiscountPercentage:
		total = amount * (1 - promo.Discount/100)
	case model.DiscountFixed:
		total = amount - promo.Discount
	default:
		return amount
	}

	if total < 0 {
		return 0
	}
	return total
}

var _ PromoService = (*PromoServiceImpl)(nil)
