package handler

import (
	"encoding/json"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/logger"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/models"
	wspkg "github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/websocket"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/services/drivers"
)

// WSHandler serves driver WebSocket sessions. Drivers stream location
// updates in and receive dispatch offers out on the same connection.
type WSHandler struct {
	manager  *wspkg.Manager
	driverUC drivers.DriverUC
	log      *logger.ZapLogger
}

// NewWSHandler creates a new WebSocket handler
func NewWSHandler(manager *wspkg.Manager, driverUC drivers.DriverUC, log *logger.ZapLogger) *WSHandler {
	return &WSHandler{
		manager:  manager,
		driverUC: driverUC,
		log:      log,
	}
}

// Serve upgrades the request and runs the session read loop.
func (h *WSHandler) Serve(c echo.Context) error {
	return h.manager.HandleConnection(c, func(client *wspkg.Client) error {
		if client.Role != models.RoleDriver {
			h.manager.SendError(client, "forbidden", "driver role required")
			return nil
		}

		for {
			var msg wspkg.Message
			if err := client.Conn.ReadJSON(&msg); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					h.log.Warn("WebSocket closed unexpectedly",
						logger.String("driver_id", client.UserID.String()),
						logger.Err(err))
				}
				return nil
			}

			switch msg.Event {
			case wspkg.EventLocationUpdate:
				h.handleLocationUpdate(c, client, msg.Data)
			default:
				h.manager.SendError(client, "unknown_event", msg.Event)
			}
		}
	})
}

func (h *WSHandler) handleLocationUpdate(c echo.Context, client *wspkg.Client, data json.RawMessage) {
	var location models.Location
	if err := json.Unmarshal(data, &location); err != nil {
		h.manager.SendError(client, "invalid_payload", "location payload is not valid")
		return
	}

	if err := h.driverUC.UpdateLocation(c.Request().Context(), client.UserID, location); err != nil {
		h.log.Error("Failed to store location from WebSocket",
			logger.String("driver_id", client.UserID.String()),
			logger.Err(err))
		h.manager.SendError(client, "location_failed", "could not store location")
	}
}
