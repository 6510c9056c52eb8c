package entities

import (
	"encoding/json"
	"time"
)

// OrderStatus represents the checkout outcome persisted with the order.
type OrderStatus string

const (
	OrderStatusPending OrderStatus = "pending"
	OrderStatusPaid    OrderStatus = "paid"
	OrderStatusFailed  OrderStatus = "failed"
)

// Order is the checkout result persisted by the service.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Provider payload:
//   - ProviderPayloadRaw keeps the gateway response (JSON) for audit.
type Order struct {
	ID       string        `json:"id"`
	CartID   string        `json:"cart_id"`
	Status   OrderStatus   `json:"status"`
	Pricing  PricingResult `json:"pricing"`
	Address  RateAddress   `json:"address"`
	Date     time.Time     `json:"date"`

	ProviderPaymentID  string          `json:"provider_payment_id,omitempty"`
	ProviderStatus     string          `json:"provider_status,omitempty"`
	ProviderPayloadRaw json.RawMessage `json:"provider_payload_raw,omitempty"`
}
