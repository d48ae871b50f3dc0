package models

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

// WSMessage represents a WebSocket message structure
type WSMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// WSErrorMessage represents an error message sent over WebSocket
type WSErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WebSocketClient represents an authenticated dashboard or driver connection
type WebSocketClient struct {
	UserID  string
	Role    string
	Conn    *websocket.Conn
	writeMu sync.Mutex
}

// WriteJSON serializes writes so concurrent fan-outs don't interleave frames
func (c *WebSocketClient) WriteJSON(v interface{}) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.Conn.WriteJSON(v)
}
