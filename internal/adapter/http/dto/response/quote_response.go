package response

import (
	"framecraft/internal/domain/entities"
)

// QuoteResponse is the pricing breakdown rendered by the cart/checkout UI.
type QuoteResponse struct {
	Subtotal       float64                   `json:"subtotal"`
	TaxAmount      float64                   `json:"tax_amount"`
	ShippingAmount float64                   `json:"shipping_amount"`
	DiscountAmount float64                   `json:"discount_amount"`
	Total          float64                   `json:"total"`
	ItemCount      int                       `json:"item_count"`
	Currency       string                    `json:"currency"`
	Breakdown      entities.PricingBreakdown `json:"breakdown"`
}

func FromPricingResult(r entities.PricingResult) QuoteResponse {
	return QuoteResponse{
		Subtotal:       r.Subtotal,
		TaxAmount:      r.TaxAmount,
		ShippingAmount: r.ShippingAmount,
		DiscountAmount: r.DiscountAmount,
		Total:          r.Total,
		ItemCount:      r.ItemCount,
		Currency:       r.Currency,
		Breakdown:      r.Breakdown,
	}
}
