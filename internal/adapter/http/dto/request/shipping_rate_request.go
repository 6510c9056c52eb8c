package request

import "framecraft/internal/domain/entities"

// ShippingRateRequest is the normalized payload the rate endpoint accepts.
// Field names are the wire contract shared with the shipping client.
type ShippingRateRequest struct {
	CountryCode   string `json:"countryCode" binding:"required"`
	StateOrCounty string `json:"stateOrCounty"`
	PostalCode    string `json:"postalCode"`
	City          string `json:"city"`
}

func (r ShippingRateRequest) ToRateAddress() entities.RateAddress {
	return entities.RateAddress{
		CountryCode:   r.CountryCode,
		StateOrCounty: r.StateOrCounty,
		PostalCode:    r.PostalCode,
		City:          r.City,
	}
}
