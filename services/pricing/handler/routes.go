package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/services/pricing"
)

// Handler combines all handlers for the pricing surface
type Handler struct {
	priceLists *PriceListHandler
}

// NewHandler creates a new combined handler
func NewHandler(pricingUC pricing.PricingUC) *Handler {
	return &Handler{priceLists: NewPriceListHandler(pricingUC)}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo, authMiddleware echo.MiddlewareFunc) {
	lists := e.Group("/pricelists", authMiddleware)
	lists.GET("/active", h.priceLists.GetActive)
	lists.POST("", h.priceLists.Create)
}
