package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/services/rides"
)

// Handler combines all handlers for the rides service
type Handler struct {
	ridesHTTP *RideHandler
}

// NewHandler creates a new combined handler
func NewHandler(rideUC rides.RideUC) *Handler {
	return &Handler{ridesHTTP: NewRideHandler(rideUC)}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo, authMiddleware echo.MiddlewareFunc) {
	group := e.Group("/rides", authMiddleware)
	group.POST("", h.ridesHTTP.Order)
	group.POST("/stop", h.ridesHTTP.Stop)
	group.POST("/cancel", h.ridesHTTP.Cancel)
	group.GET("/:id", h.ridesHTTP.Get)
	group.POST("/:id/start", h.ridesHTTP.Start)
	group.POST("/:id/complete", h.ridesHTTP.Complete)
	group.POST("/:id/panic", h.ridesHTTP.Panic)
}
