package usecase

import (
	"fmt"
	"regexp"
	"strings"

	"framecraft/internal/domain/entities"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var countryCodePattern = regexp.MustCompile(`^[A-Z]{2}$`)

// PricingCalculator produces itemized monetary breakdowns for a cart.
//
// It is a stateless value object parameterized only by tax config and
// currency at construction; instances are safe to share across any number
// of concurrent calculations. All methods are pure and fail fast with a
// *PricingError (or subtype) on contract violations.
//
// Money discipline: every multiply/sum is rounded to cents
// (half-away-from-zero) through shopspring/decimal before it is combined
// further, so binary-float drift never reaches a result.
type PricingCalculator struct {
	taxConfig entities.TaxConfig
	currency  string
}

// NewPricingCalculator builds a calculator. A nil taxConfig means the
// default 8% rate; an empty currency means USD.
func NewPricingCalculator(taxConfig *entities.TaxConfig, currencyCode string) *PricingCalculator {
	cfg := entities.TaxConfig{Rate: entities.DefaultTaxRate}
	if taxConfig != nil {
		cfg = *taxConfig
	}
	if currencyCode == "" {
		currencyCode = entities.DefaultCurrency
	}
	return &PricingCalculator{taxConfig: cfg, currency: currencyCode}
}

// TaxRate exposes the configured rate (read-only).
func (c *PricingCalculator) TaxRate() float64 { return c.taxConfig.Rate }

// Currency exposes the configured currency code (read-only).
func (c *PricingCalculator) Currency() string { return c.currency }

// CalculateSubtotal sums price*quantity over the given lines, rounding each
// line to cents. An empty slice yields 0. Every item is validated against
// the cart-line contract; a line total outside [0, MaxLineTotal] is
// rejected identifying the offending item.
func (c *PricingCalculator) CalculateSubtotal(items []entities.PricingItem) (float64, error) {
	if len(items) == 0 {
		return 0, nil
	}

	sum := decimal.Zero
	for i, it := range items {
		if err := validatePricingItem(i, it); err != nil {
			return 0, err
		}

		line := decimal.NewFromFloat(it.Price).
			Mul(decimal.NewFromInt(int64(it.Quantity))).
			Round(2)
		if line.IsNegative() || line.GreaterThan(decimal.NewFromFloat(entities.MaxLineTotal)) {
			return 0, NewPricingError(CodeInvalidLineTotal,
				fmt.Sprintf("line total out of range for item %s", it.ID),
				map[string]any{"item_id": it.ID, "sku": it.SKU, "line_total": line.InexactFloat64()})
		}
		sum = sum.Add(line)
	}

	return sum.Round(2).InexactFloat64(), nil
}

func validatePricingItem(index int, it entities.PricingItem) error {
	details := map[string]any{"index": index, "item_id": it.ID, "sku": it.SKU}
	switch {
	case strings.TrimSpace(it.ID) == "":
		return NewPricingError(CodeSubtotalCalculationError, "item is missing an id", details)
	case uuid.Validate(it.ID) != nil:
		return NewPricingError(CodeSubtotalCalculationError, "item id is not a uuid", details)
	case strings.TrimSpace(it.SKU) == "":
		return NewPricingError(CodeSubtotalCalculationError, "item is missing a sku", details)
	case it.Quantity < 1:
		return NewPricingError(CodeSubtotalCalculationError, "item quantity must be at least 1", details)
	case it.Price < 0:
		return NewPricingError(CodeSubtotalCalculationError, "item price cannot be negative", details)
	}
	return nil
}

// CalculateTax computes tax on the subtotal only. Shipping is passed in so
// the engine can reject a negative amount, but it is deliberately excluded
// from the taxable base; taxing shipping is a policy choice this service
// answers with "no".
func (c *PricingCalculator) CalculateTax(subtotal, shippingAmount float64) (float64, error) {
	if subtotal < 0 || shippingAmount < 0 {
		return 0, NewTaxError(CodeNegativeAmounts, "subtotal and shipping must be non-negative",
			map[string]any{"subtotal": subtotal, "shipping_amount": shippingAmount})
	}
	if c.taxConfig.Rate < 0 || c.taxConfig.Rate > 1 {
		return 0, NewTaxError(CodeTaxCalculationError, "tax rate must be within [0,1]",
			map[string]any{"rate": c.taxConfig.Rate})
	}

	tax := decimal.NewFromFloat(subtotal).
		Mul(decimal.NewFromFloat(c.taxConfig.Rate)).
		Round(2)
	return tax.InexactFloat64(), nil
}

// ValidateShippingAddress schema-checks the normalized address used for
// tax/shipping purposes. US addresses additionally require a postal code.
func (c *PricingCalculator) ValidateShippingAddress(addr entities.RateAddress) error {
	details := map[string]any{"address": addr}
	if !countryCodePattern.MatchString(addr.CountryCode) {
		return NewShippingError(CodeShippingCalculationError,
			"country code must be two uppercase letters", details)
	}
	if addr.CountryCode == "US" && strings.TrimSpace(addr.PostalCode) == "" {
		return NewShippingError(CodeShippingCalculationError,
			"postal code is required for US addresses", details)
	}
	return nil
}

// CalculateTotal orchestrates the full breakdown: subtotal, shipping bounds,
// tax, discount clamp, line items. A nil quote means no shipping line. The
// discount is clamped to the subtotal so the pre-tax total can never go
// negative; anything above that is ignored, not an error.
func (c *PricingCalculator) CalculateTotal(items []entities.PricingItem, quote *entities.ShippingQuote, discountAmount float64) (entities.PricingResult, error) {
	if items == nil {
		return entities.PricingResult{}, NewPricingError(CodeInvalidItems,
			"items must be provided (an empty cart is an empty slice)", nil)
	}
	if discountAmount < 0 {
		return entities.PricingResult{}, NewPricingError(CodeInvalidDiscount,
			"discount amount cannot be negative", map[string]any{"discount_amount": discountAmount})
	}

	subtotal, err := c.CalculateSubtotal(items)
	if err != nil {
		return entities.PricingResult{}, err
	}

	shippingAmount := 0.0
	if quote != nil {
		if quote.Cost < 0 || quote.Cost > entities.MaxShippingCost {
			return entities.PricingResult{}, NewShippingError(CodeShippingCalculationError,
				"shipping cost out of range", map[string]any{"cost": quote.Cost})
		}
		shippingAmount = round2(quote.Cost)
	}

	taxAmount, err := c.CalculateTax(subtotal, shippingAmount)
	if err != nil {
		return entities.PricingResult{}, err
	}

	validDiscount := round2(discountAmount)
	if validDiscount > subtotal {
		validDiscount = subtotal
	}

	total := decimal.NewFromFloat(subtotal).
		Sub(decimal.NewFromFloat(validDiscount)).
		Add(decimal.NewFromFloat(taxAmount)).
		Add(decimal.NewFromFloat(shippingAmount)).
		Round(2)
	if total.IsNegative() {
		total = decimal.Zero
	}

	itemCount := 0
	lines := make([]entities.LineBreakdown, 0, len(items))
	for _, it := range items {
		itemCount += it.Quantity
		lineTotal := decimal.NewFromFloat(it.Price).
			Mul(decimal.NewFromInt(int64(it.Quantity))).
			Round(2)
		lines = append(lines, entities.LineBreakdown{
			ID:       it.ID,
			Name:     it.Name,
			SKU:      it.SKU,
			Price:    round2(it.Price),
			Quantity: it.Quantity,
			Total:    lineTotal.InexactFloat64(),
		})
	}

	breakdown := entities.PricingBreakdown{
		Items: lines,
		Tax: entities.TaxBreakdown{
			Rate:   c.taxConfig.Rate,
			Region: c.taxConfig.Region,
			Amount: taxAmount,
		},
	}
	if quote != nil {
		breakdown.Shipping = &entities.ShippingBreakdown{
			Cost:          shippingAmount,
			Method:        quote.Method,
			EstimatedDays: quote.EstimatedDays,
			Carrier:       quote.Carrier,
		}
	}
	if validDiscount > 0 {
		breakdown.Discount = &entities.DiscountBreakdown{Amount: validDiscount}
	}

	result := entities.PricingResult{
		Subtotal:       subtotal,
		TaxAmount:      taxAmount,
		ShippingAmount: shippingAmount,
		DiscountAmount: validDiscount,
		Total:          total.InexactFloat64(),
		ItemCount:      itemCount,
		Currency:       c.currency,
		Breakdown:      breakdown,
	}

	if err := c.ValidatePricingResult(result); err != nil {
		return entities.PricingResult{}, NewPricingError(CodeTotalCalculationError,
			"assembled result failed its own invariant", map[string]any{"cause": err.Error()})
	}
	return result, nil
}

// QualifiesForFreeShipping reports whether a subtotal clears the free
// shipping threshold. A non-positive threshold means the default.
func (c *PricingCalculator) QualifiesForFreeShipping(subtotal, threshold float64) bool {
	if threshold <= 0 {
		threshold = entities.DefaultFreeShippingThreshold
	}
	return subtotal >= threshold
}

// FormatPrice renders an amount in the given currency (the calculator's
// currency when empty). Unknown codes fall back to a plain $X.XX string;
// this never fails.
func (c *PricingCalculator) FormatPrice(amount float64, currencyCode string) string {
	if currencyCode == "" {
		currencyCode = c.currency
	}
	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		return fmt.Sprintf("$%.2f", amount)
	}
	p := message.NewPrinter(language.English)
	return p.Sprintf("%v", currency.NarrowSymbol(unit.Amount(round2(amount))))
}

// ValidatePricingResult is the post-hoc sanity check: no negative monetary
// field, and the recomputed total must match within one cent of rounding
// tolerance.
func (c *PricingCalculator) ValidatePricingResult(r entities.PricingResult) error {
	fields := map[string]float64{
		"subtotal":        r.Subtotal,
		"tax_amount":      r.TaxAmount,
		"shipping_amount": r.ShippingAmount,
		"discount_amount": r.DiscountAmount,
		"total":           r.Total,
	}
	for name, v := range fields {
		if v < 0 {
			return NewPricingError(CodeNegativeAmounts,
				fmt.Sprintf("%s cannot be negative", name), map[string]any{name: v})
		}
	}

	expected := decimal.NewFromFloat(r.Subtotal).
		Sub(decimal.NewFromFloat(r.DiscountAmount)).
		Add(decimal.NewFromFloat(r.TaxAmount)).
		Add(decimal.NewFromFloat(r.ShippingAmount)).
		Round(2)
	diff := expected.Sub(decimal.NewFromFloat(r.Total)).Abs()
	if diff.GreaterThan(decimal.NewFromFloat(0.01)) {
		return NewPricingError(CodeCalculationMismatch,
			"total does not match its components",
			map[string]any{"expected": expected.InexactFloat64(), "total": r.Total})
	}
	return nil
}

func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
