package handlers

import (
	"errors"
	"net/http"

	request "framecraft/internal/adapter/http/dto/request"
	response "framecraft/internal/adapter/http/dto/response"
	"framecraft/internal/usecase"
	"framecraft/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)

// QuoteHandler prices a cart for the storefront's order summary.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// PriceCart computes the full breakdown for the posted items, optional
// address and optional promo code.
func (h *QuoteHandler) PriceCart(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	if !payload.HasItems() {
		appErr := pkg.NewDomainErrorSimple(usecase.CodeInvalidItems, "Items are required (an empty cart is an empty list)", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	result, err := h.usecase.PriceCart(c.Request.Context(), payload.ResolveItems(), payload.ResolveAddress(), payload.DiscountCode)
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPricingResult(result))
}

// mapPricingError translates pricing-engine contract violations into the
// HTTP boundary shape, preserving their stable codes.
func mapPricingError(err error) *pkg.AppError {
	var taxErr *usecase.TaxError
	var shipErr *usecase.ShippingError
	var priceErr *usecase.PricingError

	switch {
	case errors.Is(err, usecase.ErrInvalidDiscountCode):
		return pkg.NewDomainErrorSimple("INVALID_DISCOUNT_CODE", "Discount code is unknown, inactive or expired", http.StatusBadRequest)
	case errors.As(err, &taxErr):
		return pkg.NewDomainErrorSimple(taxErr.Code, taxErr.Message, http.StatusBadRequest)
	case errors.As(err, &shipErr):
		return pkg.NewDomainErrorSimple(shipErr.Code, shipErr.Message, http.StatusBadRequest)
	case errors.As(err, &priceErr):
		return pkg.NewDomainErrorSimple(priceErr.Code, priceErr.Message, http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
