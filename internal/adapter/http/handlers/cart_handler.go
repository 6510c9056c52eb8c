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

var errInvalidCartPayload = pkg.NewDomainErrorSimple("INVALID_CART_INPUT", "Invalid cart payload", http.StatusBadRequest)

// CartHandler handles HTTP requests for persisted shopping carts.
type CartHandler struct {
	usecase usecase.ICartUseCase
}

func NewCartHandler(uc usecase.ICartUseCase) *CartHandler {
	return &CartHandler{usecase: uc}
}

func (h *CartHandler) CreateCart(c *gin.Context) {
	var payload request.CartRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCartPayload.HTTPStatus, errInvalidCartPayload.ToHTTPError())
		return
	}

	cart, err := h.usecase.Create(c.Request.Context(), payload.ResolveItems())
	if err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCart(cart))
}

func (h *CartHandler) GetCart(c *gin.Context) {
	cart, err := h.usecase.GetByID(c.Request.Context(), c.Param("cart_id"))
	if err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCart(cart))
}

func (h *CartHandler) ReplaceItems(c *gin.Context) {
	var payload request.CartRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCartPayload.HTTPStatus, errInvalidCartPayload.ToHTTPError())
		return
	}

	cart, err := h.usecase.ReplaceItems(c.Request.Context(), c.Param("cart_id"), payload.ResolveItems())
	if err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCart(cart))
}

func (h *CartHandler) DeleteCart(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("cart_id")); err != nil {
		appErr := mapCartError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapCartError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCartID), errors.Is(err, usecase.ErrInvalidCartItem):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCartNotFound):
		return pkg.NewDomainErrorSimple("CART_NOT_FOUND", "Cart not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
