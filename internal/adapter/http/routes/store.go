package routes

import (
	"framecraft/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCart      = "/cart"
	PathCarts     = "/carts"
	PathCheckout  = "/checkout"
	PathOrders    = "/orders"
	PathDiscounts = "/discounts"
)

func addStoreRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler, cartHandler *handlers.CartHandler, checkoutHandler *handlers.CheckoutHandler, discountHandler *handlers.DiscountHandler) {
	cart := rg.Group(PathCart)
	{
		cart.POST("/quote", quoteHandler.PriceCart)
	}

	carts := rg.Group(PathCarts)
	{
		carts.POST("", cartHandler.CreateCart)
		carts.GET("/:cart_id", cartHandler.GetCart)
		carts.PUT("/:cart_id/items", cartHandler.ReplaceItems)
		carts.DELETE("/:cart_id", cartHandler.DeleteCart)
	}

	checkout := rg.Group(PathCheckout)
	{
		checkout.POST("/:cart_id", checkoutHandler.Checkout)
	}

	orders := rg.Group(PathOrders)
	{
		orders.GET("/:order_id", checkoutHandler.GetOrder)
	}

	discounts := rg.Group(PathDiscounts)
	{
		discounts.POST("", discountHandler.CreateDiscount)
		discounts.GET("/:code", discountHandler.GetDiscount)
	}
}
