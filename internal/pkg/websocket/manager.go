package websocket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	jwtpkg "github.com/gebeta-delivery/gebeta/internal/pkg/jwt"
	"github.com/gebeta-delivery/gebeta/internal/pkg/logger"
	"github.com/gebeta-delivery/gebeta/internal/pkg/models"
)

// Manager manages authenticated WebSocket connections keyed by user id
type Manager struct {
	sync.RWMutex
	clients  map[string]*models.WebSocketClient
	cfg      models.JWTConfig
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager
func NewManager(jwtConfig models.JWTConfig) *Manager {
	return &Manager{
		clients: make(map[string]*models.WebSocketClient),
		cfg:     jwtConfig,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection authenticates and handles a new WebSocket connection
func (m *Manager) HandleConnection(c echo.Context, handleClient func(*models.WebSocketClient, *websocket.Conn) error) error {
	client, err := m.authenticateClient(c)
	if err != nil {
		return err
	}

	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	return handleClient(client, ws)
}

// authenticateClient authenticates the WebSocket client using JWT. The token
// may arrive in the Authorization header or, for browser clients that cannot
// set headers on upgrade, in the token query parameter.
func (m *Manager) authenticateClient(c echo.Context) (*models.WebSocketClient, error) {
	tokenString := c.QueryParam("token")
	if tokenString == "" {
		authHeader := c.Request().Header.Get("Authorization")
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return nil, echo.NewHTTPError(http.StatusUnauthorized, "Missing or malformed token")
		}
		tokenString = parts[1]
	}

	claims, err := jwtpkg.ValidateToken(tokenString, m.cfg.Secret)
	if err != nil {
		logger.Warn("WebSocket token validation failed", logger.Err(err))
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	userID := fmt.Sprintf("%v", (*claims)["user_id"])
	role := fmt.Sprintf("%v", (*claims)["role"])
	if userID == "" || userID == "<nil>" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token: missing user_id claim")
	}

	return &models.WebSocketClient{UserID: userID, Role: role}, nil
}

// AddClient registers a connected client
func (m *Manager) AddClient(client *models.WebSocketClient) {
	m.Lock()
	defer m.Unlock()
	m.clients[client.UserID] = client
}

// RemoveClient removes a client by user id
func (m *Manager) RemoveClient(userID string) {
	m.Lock()
	defer m.Unlock()
	delete(m.clients, userID)
}

// SendToUser sends an event to one connected user; a miss is not an error,
// disconnected users simply don't receive pushes.
func (m *Manager) SendToUser(userID, event string, data interface{}) {
	m.RLock()
	client, ok := m.clients[userID]
	m.RUnlock()
	if !ok {
		return
	}
	m.send(client, event, data)
}

// BroadcastToRole sends an event to every connected client with the role
func (m *Manager) BroadcastToRole(role, event string, data interface{}) {
	m.RLock()
	targets := make([]*models.WebSocketClient, 0, len(m.clients))
	for _, client := range m.clients {
		if client.Role == role {
			targets = append(targets, client)
		}
	}
	m.RUnlock()

	for _, client := range targets {
		m.send(client, event, data)
	}
}

func (m *Manager) send(client *models.WebSocketClient, event string, data interface{}) {
	payload, err := json.Marshal(data)
	if err != nil {
		logger.Error("Failed to marshal WebSocket payload",
			logger.String("event", event),
			logger.Err(err))
		return
	}
	if err := client.WriteJSON(models.WSMessage{Event: event, Data: payload}); err != nil {
		logger.Warn("Failed to push WebSocket message, dropping client",
			logger.String("user_id", client.UserID),
			logger.String("event", event),
			logger.Err(err))
		m.RemoveClient(client.UserID)
	}
}
