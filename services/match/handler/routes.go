package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/logger"
	natspkg "github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/nats"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/services/match"
)

// Handler combines all handlers for the match service
type Handler struct {
	matchHTTP *MatchHandler
	matchNATS *LocationConsumer
}

// NewHandler creates a new combined handler
func NewHandler(matchUC match.MatchUC, natsClient *natspkg.Client, locations LocationWriter, log *logger.ZapLogger) *Handler {
	return &Handler{
		matchHTTP: NewMatchHandler(matchUC),
		matchNATS: NewLocationConsumer(natsClient, locations, log),
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Internal routes for service-to-service communication
	internal := e.Group("/internal")
	internal.POST("/matches", h.matchHTTP.FindDriver)
}

// InitNATSConsumers initializes all NATS consumers
func (h *Handler) InitNATSConsumers() error {
	return h.matchNATS.Init()
}
