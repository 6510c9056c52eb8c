package request

import "encoding/json"

// CheckoutRequest turns a persisted cart into an order. Payment is the
// provider payload forwarded to the gateway; the service overwrites the
// amount with its own computed total.
type CheckoutRequest struct {
	Address      AddressRequest  `json:"address" binding:"required"`
	DiscountCode string          `json:"discount_code"`
	Payment      json.RawMessage `json:"payment"`
}
