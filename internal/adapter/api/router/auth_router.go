package router

import (
	"github.com/labstack/echo/v4"

	"swapbook/internal/adapter/api/handler"
	"swapbook/internal/adapter/api/middleware"
)

func SetupAuthRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	authHandler := handler.GetAuthHandler()

	auth := e.Group("/v1/auth")
	auth.Use(authMiddleware.Authenticate)
	auth.POST("/session", authHandler.CreateSession)
	auth.POST("/logout", authHandler.Logout)

	me := e.Group("/v1/me")
	me.Use(authMiddleware.Authenticate)
	me.GET("", authHandler.Me)
	me.PUT("/city", authHandler.ChangeCity)
}
