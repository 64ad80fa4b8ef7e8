package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/models"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/utils"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/services/match"
)

// MatchHandler exposes the dispatch matcher over HTTP for the rides
// service.
type MatchHandler struct {
	matchUC match.MatchUC
}

// NewMatchHandler creates a new match HTTP handler
func NewMatchHandler(matchUC match.MatchUC) *MatchHandler {
	return &MatchHandler{matchUC: matchUC}
}

// FindDriver handles POST /internal/matches
func (h *MatchHandler) FindDriver(c echo.Context) error {
	var req models.MatchRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid match request")
	}
	if req.PassengerCount < 1 {
		return utils.BadRequestResponse(c, "passenger count must be at least 1")
	}

	result, err := h.matchUC.FindDriverForRide(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, match.ErrNoSuitableDrivers) {
			return utils.NotFoundResponse(c, match.ErrNoSuitableDrivers.Error())
		}
		return utils.InternalServerErrorResponse(c, "failed to match driver")
	}

	return c.JSON(http.StatusOK, result)
}
