package handlers

import (
	"net/http"

	request "framecraft/internal/adapter/http/dto/request"
	response "framecraft/internal/adapter/http/dto/response"
	"framecraft/internal/domain/entities"
	"framecraft/internal/usecase"
	"framecraft/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidRatePayload = pkg.NewDomainErrorSimple("INVALID_RATE_INPUT", "Invalid rate payload", http.StatusBadRequest)

// ShippingRatesHandler serves POST /api/cart/shipping, the endpoint the
// shipping client (and the storefront) queries for a quote.
//
// Rates are zone-based: domestic ground, Canada, everything else as an
// estimated international rate.
type ShippingRatesHandler struct {
	calculator *usecase.PricingCalculator
}

func NewShippingRatesHandler(calculator *usecase.PricingCalculator) *ShippingRatesHandler {
	return &ShippingRatesHandler{calculator: calculator}
}

func (h *ShippingRatesHandler) CalculateRate(c *gin.Context) {
	var payload request.ShippingRateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRatePayload.HTTPStatus, errInvalidRatePayload.ToHTTPError())
		return
	}

	addr := payload.ToRateAddress()
	if err := h.calculator.ValidateShippingAddress(addr); err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromShippingQuote(rateForZone(addr)))
}

func rateForZone(addr entities.RateAddress) entities.ShippingQuote {
	switch addr.CountryCode {
	case "US":
		return entities.ShippingQuote{
			Cost:              9.99,
			Currency:          "USD",
			EstimatedDays:     5,
			Method:            "Standard Ground",
			Carrier:           "USPS",
			TrackingAvailable: true,
			AddressValidated:  true,
		}
	case "CA":
		return entities.ShippingQuote{
			Cost:              14.99,
			Currency:          "USD",
			EstimatedDays:     7,
			Method:            "Standard",
			Carrier:           "Canada Post",
			TrackingAvailable: true,
			AddressValidated:  true,
		}
	default:
		return entities.ShippingQuote{
			Cost:          24.99,
			Currency:      "USD",
			EstimatedDays: 12,
			Method:        "International",
			IsEstimated:   true,
		}
	}
}
