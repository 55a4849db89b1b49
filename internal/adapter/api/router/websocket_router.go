package router

import (
	"github.com/labstack/echo/v4"

	"swapbook/internal/adapter/api/handler"
)

func SetupWebSocketRouter(e *echo.Echo, wsHandler *handler.WebSocketHandler) {
	// Auth happens inside the handler; the token rides a query param
	// because browsers cannot set headers on websocket upgrades.
	e.GET("/ws", wsHandler.HandleWebSocket)
}
