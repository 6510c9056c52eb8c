package response

import (
	"time"

	"framecraft/internal/domain/entities"
)

type OrderResponse struct {
	ID                string               `json:"id"`
	CartID            string               `json:"cart_id"`
	Status            string               `json:"status"`
	Date              time.Time            `json:"date"`
	Pricing           QuoteResponse        `json:"pricing"`
	Address           entities.RateAddress `json:"address"`
	ProviderPaymentID string               `json:"provider_payment_id,omitempty"`
	ProviderStatus    string               `json:"provider_status,omitempty"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		ID:                o.ID,
		CartID:            o.CartID,
		Status:            string(o.Status),
		Date:              o.Date,
		Pricing:           FromPricingResult(o.Pricing),
		Address:           o.Address,
		ProviderPaymentID: o.ProviderPaymentID,
		ProviderStatus:    o.ProviderStatus,
	}
}
