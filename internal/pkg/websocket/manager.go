package websocket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	jwtpkg "github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/jwt"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/logger"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/models"
)

// Client is one authenticated WebSocket connection.
type Client struct {
	UserID uuid.UUID
	Role   string
	Conn   *websocket.Conn
}

// Message is the envelope for everything that crosses the socket, in
// both directions.
type Message struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// ErrorPayload is the data of an error event.
type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Manager authenticates, upgrades and tracks WebSocket connections so
// that server-side events can be pushed to a connected user.
type Manager struct {
	mu       sync.RWMutex
	clients  map[uuid.UUID]*Client
	cfg      models.JWTConfig
	log      *logger.ZapLogger
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager
func NewManager(cfg models.JWTConfig, log *logger.ZapLogger) *Manager {
	return &Manager{
		clients: make(map[uuid.UUID]*Client),
		cfg:     cfg,
		log:     log,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection authenticates the request, upgrades it to a WebSocket
// and keeps the client registered for pushes until serve returns.
func (m *Manager) HandleConnection(c echo.Context, serve func(*Client) error) error {
	client, err := m.authenticate(c)
	if err != nil {
		return err
	}

	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	client.Conn = ws
	m.add(client)
	defer m.remove(client.UserID)

	return serve(client)
}

func (m *Manager) authenticate(c echo.Context) (*Client, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
	}

	claims, err := jwtpkg.ValidateToken(parts[1], m.cfg.Secret)
	if err != nil {
		m.log.Warn("WebSocket token validation failed", logger.Err(err))
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	userID, err := uuid.Parse(fmt.Sprintf("%v", (*claims)["user_id"]))
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token: user_id is not a valid UUID")
	}

	return &Client{
		UserID: userID,
		Role:   fmt.Sprintf("%v", (*claims)["role"]),
	}, nil
}

func (m *Manager) add(client *Client) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clients[client.UserID] = client
}

func (m *Manager) remove(userID uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.clients, userID)
}

// Send writes one enveloped event to the client.
func (m *Manager) Send(client *Client, event string, data interface{}) error {
	if client.Conn == nil {
		return nil
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal event data: %w", err)
	}

	return client.Conn.WriteJSON(Message{Event: event, Data: raw})
}

// SendError sends an error event to the client. Delivery failures are
// logged and swallowed; an unreachable client is handled by the read loop.
func (m *Manager) SendError(client *Client, code, message string) {
	if err := m.Send(client, EventError, ErrorPayload{Code: code, Message: message}); err != nil {
		m.log.Warn("Failed to send error event",
			logger.String("user_id", client.UserID.String()),
			logger.String("code", code),
			logger.Err(err))
	}
}

// Notify pushes an event to the connected client with the given user ID.
// It reports whether the user had an open connection.
func (m *Manager) Notify(userID uuid.UUID, event string, data interface{}) bool {
	m.mu.RLock()
	client, ok := m.clients[userID]
	m.mu.RUnlock()

	if !ok {
		return false
	}

	if err := m.Send(client, event, data); err != nil {
		m.log.Warn("Failed to push event to client",
			logger.String("user_id", userID.String()),
			logger.String("event", event),
			logger.Err(err))
		return false
	}
	return true
}
