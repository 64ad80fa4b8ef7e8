package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/models"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/utils"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/services/drivers"
)

// ShiftHandler exposes driver shift and location operations over HTTP.
type ShiftHandler struct {
	driverUC drivers.DriverUC
}

// NewShiftHandler creates a new shift HTTP handler
func NewShiftHandler(driverUC drivers.DriverUC) *ShiftHandler {
	return &ShiftHandler{driverUC: driverUC}
}

type locationRequest struct {
	Location models.Location `json:"location"`
}

// Activate handles POST /drivers/shift/activate
func (h *ShiftHandler) Activate(c echo.Context) error {
	driverID, err := driverFrom(c)
	if err != nil {
		return utils.ForbiddenResponse(c, err.Error())
	}

	log, err := h.driverUC.Activate(c.Request().Context(), driverID)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "failed to activate driver")
	}
	return c.JSON(http.StatusOK, log)
}

// Deactivate handles POST /drivers/shift/deactivate
func (h *ShiftHandler) Deactivate(c echo.Context) error {
	driverID, err := driverFrom(c)
	if err != nil {
		return utils.ForbiddenResponse(c, err.Error())
	}

	log, err := h.driverUC.Deactivate(c.Request().Context(), driverID)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "failed to deactivate driver")
	}
	return c.JSON(http.StatusOK, log)
}

// WorkedToday handles GET /drivers/shift/worked
func (h *ShiftHandler) WorkedToday(c echo.Context) error {
	driverID, err := driverFrom(c)
	if err != nil {
		return utils.ForbiddenResponse(c, err.Error())
	}

	worked, err := h.driverUC.WorkedToday(c.Request().Context(), driverID)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "failed to read worked time")
	}
	return c.JSON(http.StatusOK, map[string]int64{"worked_seconds": int64(worked.Seconds())})
}

// UpdateLocation handles PUT /drivers/location
func (h *ShiftHandler) UpdateLocation(c echo.Context) error {
	driverID, err := driverFrom(c)
	if err != nil {
		return utils.ForbiddenResponse(c, err.Error())
	}

	var req locationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid location")
	}

	if err := h.driverUC.UpdateLocation(c.Request().Context(), driverID, req.Location); err != nil {
		return utils.InternalServerErrorResponse(c, "failed to update location")
	}
	return c.NoContent(http.StatusNoContent)
}

func driverFrom(c echo.Context) (uuid.UUID, error) {
	id, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return uuid.Nil, errors.New("missing user identity")
	}
	if role, _ := c.Get("user_role").(string); role != models.RoleDriver {
		return uuid.Nil, errors.New("only drivers may manage shifts")
	}
	return id, nil
}
