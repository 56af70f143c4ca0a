package repository

import (
	"context"
	"time"

	"flight-booking/internal/model"
	apperrors "flight-booking/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PromoRepository interface {
	// FindByCode matches case-insensitively.
	FindByCode(ctx context.Context, code string) (*model.PromoCode, error)
	FindByID(ctx context.Context, id int) (*model.PromoCode, error)

	// Transaction methods
	MarkUsed(ctx context.Context, tx pgx.Tx, id int) error
}

type PromoRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewPromoRepository(pool *pgxpool.Pool) PromoRepository {
	return &PromoRepositoryImpl{pool: pool}
}

func (r *PromoRepositoryImpl) FindByCode(ctx context.Context, code string) (*model.PromoCode, error) {
	query := `
		SELECT id, code, discount_type, discount, valid_until, is_used, created_at, updated_at
		FROM promo_codes
		WHERE LOWER(code) = LOWER($1)
	`

	var promo model.PromoCode
	err := r.pool.QueryRow(ctx, query, code).Scan(
		&promo.ID,
		&promo.Code,
		&promo.DiscountType,
		&promo.Discount,
		&promo.ValidUntil,
		&promo.IsUsed,
		&promo.CreatedAt,
		&promo.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrPromoInvalid
		}
		return nil, err
	}

	return &promo, nil
}

func (r *PromoRepositoryImpl) FindByID(ctx context.Context, id int) (*model.PromoCode, error) {
	query := `
		SELECT id, code, discount_type, discount, valid_until, is_used, created_at, updated_at
		FROM promo_codes
		WHERE id = $1
	`

	var promo model.PromoCode
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&promo.ID,
		&promo.Code,
		&promo.DiscountType,
		&promo.Discount,
		&promo.ValidUntil,
		&promo.IsUsed,
		&promo.CreatedAt,
		&promo.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrPromoInvalid
		}
		return nil, err
	}

	return &promo, nil
}

// MarkUsed consumes the code's single global use. The conditional update makes
// two concurrent bookings with the same code race cleanly: one wins, the other
// gets ErrPromoInvalid.
func (r *PromoRepositoryImpl) MarkUsed(ctx context.Context, tx pgx.Tx, id int) error {
	result, err := tx.Exec(ctx, `
		UPDATE promo_codes
		SET is_used = true, updated_at = $1
		WHERE id = $2 AND is_used = false
	`, time.Now().UTC(), id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrPromoInvalid
	}
	return nil
}

var _ PromoRepository = (*PromoRepositoryImpl)(nil)
