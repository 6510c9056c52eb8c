package usecase

import "fmt"

// Stable machine-readable codes carried by pricing errors. Handlers map
// these onto HTTP responses; logs key off them.
const (
	CodeSubtotalCalculationError = "SUBTOTAL_CALCULATION_ERROR"
	CodeInvalidLineTotal         = "INVALID_LINE_TOTAL"
	CodeTaxCalculationError      = "TAX_CALCULATION_ERROR"
	CodeShippingCalculationError = "SHIPPING_CALCULATION_ERROR"
	CodeInvalidItems             = "INVALID_ITEMS"
	CodeInvalidDiscount          = "INVALID_DISCOUNT"
	CodeTotalCalculationError    = "TOTAL_CALCULATION_ERROR"
	CodeNegativeAmounts          = "NEGATIVE_AMOUNTS"
	CodeCalculationMismatch      = "CALCULATION_MISMATCH"
)

// PricingError is a contract violation surfaced by the pricing engine.
//
// These indicate a caller bug or corrupted cart state, not a runtime
// condition to recover from; the Details payload exists for logging.
type PricingError struct {
	Code    string
	Message string
	Details map[string]any
}

func (e *PricingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// TaxError is a PricingError raised while computing tax.
type TaxError struct {
	PricingError
}

// ShippingError is a PricingError raised while validating shipping
// input (address or quoted cost).
type ShippingError struct {
	PricingError
}

func NewPricingError(code, message string, details map[string]any) *PricingError {
	return &PricingError{Code: code, Message: message, Details: details}
}

func NewTaxError(code, message string, details map[string]any) *TaxError {
	return &TaxError{PricingError{Code: code, Message: message, Details: details}}
}

func NewShippingError(code, message string, details map[string]any) *ShippingError {
	return &ShippingError{PricingError{Code: code, Message: message, Details: details}}
}
