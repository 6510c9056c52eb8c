package response

import (
	"time"

	"framecraft/internal/domain/entities"
)

type DiscountResponse struct {
	Code      string     `json:"code"`
	Type      string     `json:"type"`
	Value     float64    `json:"value"`
	Active    bool       `json:"active"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

func FromDiscount(d entities.Discount) DiscountResponse {
	return DiscountResponse{
		Code:      d.Code,
		Type:      string(d.Type),
		Value:     d.Value,
		Active:    d.Active,
		ExpiresAt: d.ExpiresAt,
	}
}
