package handler

import (
	"context"
	"net/http"

	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"swapbook/internal/usecase"
	ws "swapbook/internal/infrastructure/websocket"
	"swapbook/pkg/errors"
	"swapbook/pkg/logger"
)

type WebSocketHandler struct {
	wsManager      *ws.Manager
	verifier       usecase.TokenVerifier
	listingUseCase *usecase.ListingUseCase
}

var upgrader = gorillaws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // TODO: restrict origins once the web client domain is fixed
	},
}

func NewWebSocketHandler(wsManager *ws.Manager, verifier usecase.TokenVerifier, listingUseCase *usecase.ListingUseCase) *WebSocketHandler {
	return &WebSocketHandler{
		wsManager:      wsManager,
		verifier:       verifier,
		listingUseCase: listingUseCase,
	}
}

// HandleWebSocket upgrades the connection and ties it to a listing
// subscription for the lifetime of the socket. The subscription is
// explicitly detached when the socket drops, so a closed tab never
// leaks a watcher.
func (h *WebSocketHandler) HandleWebSocket(c echo.Context) error {
	token := c.QueryParam("token")
	identity, err := h.verifier.VerifyToken(c.Request().Context(), token)
	if err != nil {
		return errors.Unauthorized("Authentication required", err)
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return errors.Internal("Failed to upgrade connection", err)
	}

	client := &ws.Client{
		UserID: identity.UID,
		Conn:   conn,
		Send:   make(chan []byte, 256),
	}

	h.wsManager.Register <- client

	// The request context dies when this handler returns; the
	// subscription must outlive it and is ended by unsubscribe.
	unsubscribe, err := h.listingUseCase.Subscribe(context.Background(), identity.UID)
	if err != nil {
		logger.Error("Failed to subscribe %s to listings: %v", identity.UID, err)
		unsubscribe = func() {}
	}

	go client.WritePump()
	go func() {
		defer unsubscribe()
		client.ReadPump(h.wsManager)
	}()

	return nil
}
