package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/logger"
	natspkg "github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/nats"
	wspkg "github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/websocket"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/services/drivers"
)

// Handler combines all handlers for the drivers service
type Handler struct {
	shifts    *ShiftHandler
	ws        *WSHandler
	matchNATS *MatchConsumer
}

// NewHandler creates a new combined handler
func NewHandler(driverUC drivers.DriverUC, manager *wspkg.Manager, natsClient *natspkg.Client, log *logger.ZapLogger) *Handler {
	return &Handler{
		shifts:    NewShiftHandler(driverUC),
		ws:        NewWSHandler(manager, driverUC, log),
		matchNATS: NewMatchConsumer(natsClient, manager),
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo, authMiddleware echo.MiddlewareFunc) {
	group := e.Group("/drivers", authMiddleware)
	group.POST("/shift/activate", h.shifts.Activate)
	group.POST("/shift/deactivate", h.shifts.Deactivate)
	group.GET("/shift/worked", h.shifts.WorkedToday)
	group.PUT("/location", h.shifts.UpdateLocation)

	// The WebSocket endpoint authenticates inside the upgrade handshake.
	e.GET("/drivers/ws", h.ws.Serve)
}

// InitNATSConsumers initializes all NATS consumers
func (h *Handler) InitNATSConsumers() error {
	return h.matchNATS.Init()
}
