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

var errInvalidDiscountPayload = pkg.NewDomainErrorSimple("INVALID_DISCOUNT_INPUT", "Invalid discount payload", http.StatusBadRequest)

// DiscountHandler manages promo codes. Creation is an operator action; the
// storefront only ever resolves codes through quote/checkout.
type DiscountHandler struct {
	usecase usecase.IDiscountUseCase
}

func NewDiscountHandler(uc usecase.IDiscountUseCase) *DiscountHandler {
	return &DiscountHandler{usecase: uc}
}

func (h *DiscountHandler) CreateDiscount(c *gin.Context) {
	var payload request.DiscountRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDiscountPayload.HTTPStatus, errInvalidDiscountPayload.ToHTTPError())
		return
	}

	d, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapDiscountError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromDiscount(d))
}

func (h *DiscountHandler) GetDiscount(c *gin.Context) {
	d, err := h.usecase.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		appErr := mapDiscountError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDiscount(d))
}

func mapDiscountError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDiscount):
		return pkg.NewDomainErrorSimple("INVALID_DISCOUNT_INPUT", "Invalid discount payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidDiscountCode):
		return pkg.NewDomainErrorSimple("DISCOUNT_NOT_FOUND", "Discount code not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
