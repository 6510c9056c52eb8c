package entities

import (
	"time"
)

// DiscountType says how a code's value applies to the subtotal.
type DiscountType string

const (
	DiscountTypeFixed   DiscountType = "fixed"
	DiscountTypePercent DiscountType = "percent"
)

// Discount is a promo code persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: code (stored uppercase)
//
// Percent values are whole percentages (10 = 10% off the subtotal).
type Discount struct {
	Code      string       `json:"code"`
	Type      DiscountType `json:"type"`
	Value     float64      `json:"value"`
	Active    bool         `json:"active"`
	ExpiresAt *time.Time   `json:"expires_at,omitempty"`
}

// Usable reports whether the code can still be applied at the given time.
func (d Discount) Usable(now time.Time) bool {
	if !d.Active || d.Value <= 0 {
		return false
	}
	if d.ExpiresAt != nil && now.After(*d.ExpiresAt) {
		return false
	}
	return true
}

// AmountFor resolves the discount amount against a subtotal. The pricing
// engine still clamps the result, this only converts percent codes.
func (d Discount) AmountFor(subtotal float64) float64 {
	switch d.Type {
	case DiscountTypePercent:
		return subtotal * d.Value / 100
	default:
		return d.Value
	}
}
