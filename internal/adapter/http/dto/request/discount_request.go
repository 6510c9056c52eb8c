package request

import (
	"time"

	"framecraft/internal/domain/entities"
)

// DiscountRequest defines a promo code. Value is an amount for fixed codes
// and a whole percentage for percent codes.
type DiscountRequest struct {
	Code      string     `json:"code" binding:"required"`
	Type      string     `json:"type" binding:"required"`
	Value     float64    `json:"value" binding:"required"`
	Active    bool       `json:"active"`
	ExpiresAt *time.Time `json:"expires_at"`
}

func (r DiscountRequest) ToEntity() entities.Discount {
	return entities.Discount{
		Code:      r.Code,
		Type:      entities.DiscountType(r.Type),
		Value:     r.Value,
		Active:    r.Active,
		ExpiresAt: r.ExpiresAt,
	}
}
