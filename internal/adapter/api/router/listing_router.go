package router

import (
	"github.com/labstack/echo/v4"

	"swapbook/internal/adapter/api/handler"
	"swapbook/internal/adapter/api/middleware"
)

func SetupListingRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	listingHandler := handler.GetListingHandler()
	paymentHandler := handler.GetPaymentHandler()

	listings := e.Group("/v1/listings")
	listings.Use(authMiddleware.Authenticate)
	listings.GET("", listingHandler.ListListings)
	listings.POST("", listingHandler.PublishListing)

	e.GET("/v1/catalog", listingHandler.GetCatalog)
	e.GET("/v1/featured-info", paymentHandler.GetFeaturedInfo)
}
