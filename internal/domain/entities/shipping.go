package entities

import "strings"

// ShippingAddress is the full address form collected at checkout.
//
// Validity is judged by presence and minimal length, not deep format
// checks; the rate endpoint owns real address validation.
type ShippingAddress struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address1  string `json:"address1"`
	Address2  string `json:"address2,omitempty"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip"`
	Country   string `json:"country"`
	Phone     string `json:"phone,omitempty"`
}

// RateAddress is the normalized payload sent to the rate endpoint and the
// shape the pricing engine validates for tax/shipping purposes.
type RateAddress struct {
	CountryCode   string `json:"countryCode"`
	StateOrCounty string `json:"stateOrCounty,omitempty"`
	PostalCode    string `json:"postalCode,omitempty"`
	City          string `json:"city,omitempty"`
}

// Normalize maps the checkout form onto the rate endpoint payload.
func (a ShippingAddress) Normalize() RateAddress {
	return RateAddress{
		CountryCode:   strings.ToUpper(strings.TrimSpace(a.Country)),
		StateOrCounty: strings.TrimSpace(a.State),
		PostalCode:    strings.TrimSpace(a.Zip),
		City:          strings.TrimSpace(a.City),
	}
}
