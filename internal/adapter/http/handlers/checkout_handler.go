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

var errInvalidCheckoutPayload = pkg.NewDomainErrorSimple("INVALID_CHECKOUT_INPUT", "Invalid checkout payload", http.StatusBadRequest)

// CheckoutHandler turns a persisted cart into a paid order.
type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

// Checkout prices the cart identified in the path and charges it. When the
// gateway declines or errors the shopper gets a generic failure; the cart
// is untouched and checkout can be retried.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var payload request.CheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.Checkout(
		c.Request.Context(),
		c.Param("cart_id"),
		payload.Address.ToEntity(),
		payload.DiscountCode,
		payload.Payment,
	)
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOrder(order))
}

func (h *CheckoutHandler) GetOrder(c *gin.Context) {
	order, err := h.usecase.GetOrderByID(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCartID),
		errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrInvalidPaymentPayload),
		errors.Is(err, usecase.ErrEmptyCart):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCartNotFound):
		return pkg.NewDomainErrorSimple("CART_NOT_FOUND", "Cart not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidDiscountCode):
		return pkg.NewDomainErrorSimple("INVALID_DISCOUNT_CODE", "Discount code is unknown, inactive or expired", http.StatusBadRequest)
	default:
		if pricingErr := mapPricingError(err); pricingErr.Code != "INTERNAL_ERROR" {
			return pricingErr
		}
		return pkg.NewDomainError("CHECKOUT_FAILED", "Could not calculate or charge the order total", err, http.StatusBadGateway)
	}
}
