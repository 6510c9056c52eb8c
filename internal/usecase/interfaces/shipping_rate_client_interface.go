package interfaces

import (
	"context"

	"framecraft/internal/domain/entities"
)

// IShippingRateClient abstracts the external shipping-rate service.
//
// CalculateShipping collapses every failure mode (invalid address, network
// errors, non-2xx responses, malformed bodies) to a nil quote; it never
// returns an error. Callers have exactly one decision point: quote or no
// quote, with checkout falling back to "calculated at checkout" messaging.
type IShippingRateClient interface {
	CalculateShipping(ctx context.Context, addr entities.ShippingAddress) *entities.ShippingQuote
}
