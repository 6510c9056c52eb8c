package response

import "framecraft/internal/domain/entities"

// ShippingRateResponse is the rate endpoint's wire shape. Field names are
// the contract the shipping client parses; every field is optional there
// and defaulted, but the server always sends the full set.
type ShippingRateResponse struct {
	Cost              float64 `json:"cost"`
	Currency          string  `json:"currency"`
	EstimatedDays     int     `json:"estimatedDays"`
	Method            string  `json:"method"`
	Carrier           string  `json:"carrier,omitempty"`
	TrackingAvailable bool    `json:"trackingAvailable"`
	IsEstimated       bool    `json:"isEstimated"`
	AddressValidated  bool    `json:"addressValidated"`
}

func FromShippingQuote(q entities.ShippingQuote) ShippingRateResponse {
	return ShippingRateResponse{
		Cost:              q.Cost,
		Currency:          q.Currency,
		EstimatedDays:     q.EstimatedDays,
		Method:            q.Method,
		Carrier:           q.Carrier,
		TrackingAvailable: q.TrackingAvailable,
		IsEstimated:       q.IsEstimated,
		AddressValidated:  q.AddressValidated,
	}
}
