package handler

import (
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/gebeta-delivery/gebeta/internal/pkg/logger"
	"github.com/gebeta-delivery/gebeta/internal/pkg/models"
	ws "github.com/gebeta-delivery/gebeta/internal/pkg/websocket"
)

// WebSocketHandler serves the dashboard push endpoint
type WebSocketHandler struct {
	wsManager *ws.Manager
}

// NewWebSocketHandler creates a new WebSocket handler
func NewWebSocketHandler(wsManager *ws.Manager) *WebSocketHandler {
	return &WebSocketHandler{wsManager: wsManager}
}

// RegisterRoutes registers the WebSocket endpoint
func (h *WebSocketHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/ws", h.handleWebSocket)
}

// handleWebSocket upgrades the connection and parks it until the client
// disconnects. The connection is push-only; inbound frames are read and
// dropped to service pings and detect closure.
func (h *WebSocketHandler) handleWebSocket(c echo.Context) error {
	return h.wsManager.HandleConnection(c, func(client *models.WebSocketClient, conn *websocket.Conn) error {
		client.Conn = conn
		h.wsManager.AddClient(client)
		defer h.wsManager.RemoveClient(client.UserID)

		logger.Info("WebSocket client connected",
			logger.String("user_id", client.UserID),
			logger.String("role", client.Role))

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				logger.Debug("WebSocket client disconnected",
					logger.String("user_id", client.UserID),
					logger.Err(err))
				return nil
			}
		}
	})
}
