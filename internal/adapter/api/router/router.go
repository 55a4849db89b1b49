package router

import (
	"github.com/labstack/echo/v4"

	"swapbook/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	SetupAuthRouter(e, authMiddleware)
	SetupListingRouter(e, authMiddleware)
	SetupHealthRouter(e)
}
