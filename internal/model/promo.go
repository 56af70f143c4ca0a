package model

import "time"

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// PromoCode is a single-use discount token. Usage is global per code, not per
// user; that is the documented behavior, not a bug.
type PromoCode struct {
	ID           int          `json:"id" db:"id"`
	Code         string       `json:"code" db:"code"`
	DiscountType DiscountType `json:"discount_type" db:"discount_type"`
	Discount     float64      `json:"discount" db:"discount"`
	ValidUntil   time.Time    `json:"valid_until" db:"valid_until"`
	IsUsed       bool         `json:"is_used" db:"is_used"`
	CreatedAt    time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at" db:"updated_at"`
}

func (p *PromoCode) IsExpired(now time.Time) bool {
	return p.ValidUntil.Before(now)
}
