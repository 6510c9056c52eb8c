package entities

// Monetary bounds enforced by the pricing engine.
//
// Line totals above MaxLineTotal indicate a corrupted cart rather than a
// plausible framed-print order; shipping above MaxShippingCost likewise.
const (
	MaxLineTotal    = 999999.99
	MaxShippingCost = 999.99

	DefaultTaxRate               = 0.08
	DefaultCurrency              = "USD"
	DefaultFreeShippingThreshold = 100.00
)

// PricingItem is one cart line handed to the pricing engine.
//
// ID is the cart line id (uuid), SKU identifies the print+frame combination.
// Name and Category are optional display metadata carried into the breakdown.
type PricingItem struct {
	ID       string  `json:"id"`
	SKU      string  `json:"sku"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Name     string  `json:"name,omitempty"`
	Category string  `json:"category,omitempty"`
}

// TaxConfig parameterizes a PricingCalculator. Immutable after construction.
type TaxConfig struct {
	Rate       float64  `json:"rate"`
	Region     string   `json:"region,omitempty"`
	Exemptions []string `json:"exemptions,omitempty"`
}

// ShippingQuote is the normalized result of a rate lookup.
//
// It is produced by the shipping client (or the rate endpoint) and consumed
// as an opaque value by the pricing engine; only Cost participates in math.
type ShippingQuote struct {
	Cost              float64 `json:"cost"`
	Currency          string  `json:"currency"`
	EstimatedDays     int     `json:"estimated_days"`
	Method            string  `json:"method"`
	Carrier           string  `json:"carrier,omitempty"`
	TrackingAvailable bool    `json:"tracking_available"`
	IsEstimated       bool    `json:"is_estimated"`
	AddressValidated  bool    `json:"address_validated"`
}

// LineBreakdown itemizes one cart line inside a PricingResult.
type LineBreakdown struct {
	ID       string  `json:"id"`
	Name     string  `json:"name,omitempty"`
	SKU      string  `json:"sku"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Total    float64 `json:"total"`
}

// TaxBreakdown describes the applied tax line.
type TaxBreakdown struct {
	Rate   float64 `json:"rate"`
	Region string  `json:"region,omitempty"`
	Amount float64 `json:"amount"`
}

// ShippingBreakdown describes the applied shipping line.
type ShippingBreakdown struct {
	Cost          float64 `json:"cost"`
	Method        string  `json:"method"`
	EstimatedDays int     `json:"estimated_days"`
	Carrier       string  `json:"carrier,omitempty"`
}

// DiscountBreakdown describes the applied discount line.
type DiscountBreakdown struct {
	Code   string  `json:"code,omitempty"`
	Amount float64 `json:"amount"`
}

// PricingBreakdown itemizes everything that contributed to a total.
// Shipping is nil when no quote was supplied, Discount is nil when the
// effective discount is zero.
type PricingBreakdown struct {
	Items    []LineBreakdown    `json:"items"`
	Tax      TaxBreakdown       `json:"tax"`
	Shipping *ShippingBreakdown `json:"shipping"`
	Discount *DiscountBreakdown `json:"discount,omitempty"`
}

// PricingResult is the fully itemized monetary breakdown of one calculation.
//
// Invariant: Total == round2(Subtotal - DiscountAmount + TaxAmount +
// ShippingAmount) and no monetary field is negative.
type PricingResult struct {
	Subtotal       float64          `json:"subtotal"`
	TaxAmount      float64          `json:"tax_amount"`
	ShippingAmount float64          `json:"shipping_amount"`
	DiscountAmount float64          `json:"discount_amount"`
	Total          float64          `json:"total"`
	ItemCount      int              `json:"item_count"`
	Currency       string           `json:"currency"`
	Breakdown      PricingBreakdown `json:"breakdown"`
}
