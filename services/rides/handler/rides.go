package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/models"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/utils"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/services/match"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/services/rides"
)

// RideHandler exposes the ride lifecycle over HTTP.
type RideHandler struct {
	rideUC rides.RideUC
}

// NewRideHandler creates a new ride HTTP handler
func NewRideHandler(rideUC rides.RideUC) *RideHandler {
	return &RideHandler{rideUC: rideUC}
}

type stopRideRequest struct {
	Location models.Location `json:"location"`
}

type cancelRideRequest struct {
	Reason string `json:"reason"`
}

type panicRideRequest struct {
	Location models.Location `json:"location"`
}

// Order handles POST /rides
func (h *RideHandler) Order(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "missing user identity")
	}
	if actor.Role != models.RolePassenger {
		return utils.ForbiddenResponse(c, "only passengers may order rides")
	}

	var req models.RideRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid ride request")
	}
	// The orderer is always the main passenger.
	if len(req.PassengerIDs) == 0 || req.PassengerIDs[0] != actor.ID {
		req.PassengerIDs = append([]uuid.UUID{actor.ID}, req.PassengerIDs...)
	}

	ride, err := h.rideUC.OrderRide(c.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, match.ErrNoSuitableDrivers):
			return utils.NotFoundResponse(c, match.ErrNoSuitableDrivers.Error())
		case errors.Is(err, rides.ErrDriverConflict):
			return utils.ConflictResponse(c, rides.ErrDriverConflict.Error())
		case errors.Is(err, rides.ErrInvalidRoute):
			return utils.BadRequestResponse(c, err.Error())
		}
		return utils.InternalServerErrorResponse(c, "failed to order ride")
	}
	return c.JSON(http.StatusCreated, ride)
}

// Start handles POST /rides/:id/start
func (h *RideHandler) Start(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "missing user identity")
	}
	rideID, ok := utils.UUIDParam(c, "id")
	if !ok {
		return utils.BadRequestResponse(c, "invalid ride id")
	}

	ride, err := h.rideUC.StartRide(c.Request().Context(), rideID, actor.ID)
	if err != nil {
		return rideErrorResponse(c, err, "failed to start ride")
	}
	return c.JSON(http.StatusOK, ride)
}

// Stop handles POST /rides/stop
func (h *RideHandler) Stop(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "missing user identity")
	}
	if actor.Role != models.RoleDriver {
		return utils.ForbiddenResponse(c, "only the driver may stop a ride")
	}

	var req stopRideRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid stop request")
	}

	price, err := h.rideUC.StopRide(c.Request().Context(), actor.ID, req.Location)
	if err != nil {
		if errors.Is(err, rides.ErrRouteGeometryMissing) || errors.Is(err, rides.ErrGeocodeFailed) {
			return utils.ErrorResponseHandler(c, http.StatusBadGateway, err.Error())
		}
		return rideErrorResponse(c, err, "failed to stop ride")
	}
	return c.JSON(http.StatusOK, map[string]float64{"price": price})
}

// Cancel handles POST /rides/cancel
func (h *RideHandler) Cancel(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "missing user identity")
	}

	var req cancelRideRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid cancel request")
	}

	if err := h.rideUC.CancelRide(c.Request().Context(), actor, req.Reason); err != nil {
		return rideErrorResponse(c, err, "failed to cancel ride")
	}
	return c.NoContent(http.StatusNoContent)
}

// Complete handles POST /rides/:id/complete
func (h *RideHandler) Complete(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "missing user identity")
	}
	rideID, ok := utils.UUIDParam(c, "id")
	if !ok {
		return utils.BadRequestResponse(c, "invalid ride id")
	}

	if err := h.rideUC.CompleteRide(c.Request().Context(), rideID, actor.ID); err != nil {
		return rideErrorResponse(c, err, "failed to complete ride")
	}
	return c.NoContent(http.StatusNoContent)
}

// Panic handles POST /rides/:id/panic
func (h *RideHandler) Panic(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "missing user identity")
	}
	rideID, ok := utils.UUIDParam(c, "id")
	if !ok {
		return utils.BadRequestResponse(c, "invalid ride id")
	}

	var req panicRideRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid panic request")
	}

	if err := h.rideUC.PanicRide(c.Request().Context(), rideID, actor, req.Location); err != nil {
		return rideErrorResponse(c, err, "failed to record panic")
	}
	return c.NoContent(http.StatusAccepted)
}

// Get handles GET /rides/:id
func (h *RideHandler) Get(c echo.Context) error {
	rideID, ok := utils.UUIDParam(c, "id")
	if !ok {
		return utils.BadRequestResponse(c, "invalid ride id")
	}

	ride, err := h.rideUC.GetRide(c.Request().Context(), rideID)
	if err != nil {
		return rideErrorResponse(c, err, "failed to load ride")
	}
	return c.JSON(http.StatusOK, ride)
}

func rideErrorResponse(c echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, rides.ErrRideNotFound):
		return utils.NotFoundResponse(c, rides.ErrRideNotFound.Error())
	case errors.Is(err, rides.ErrAccessDenied):
		return utils.ForbiddenResponse(c, rides.ErrAccessDenied.Error())
	case errors.Is(err, rides.ErrInvalidState):
		return utils.ConflictResponse(c, rides.ErrInvalidState.Error())
	}
	return utils.InternalServerErrorResponse(c, fallback)
}

func actorFrom(c echo.Context) (models.Actor, error) {
	id, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return models.Actor{}, errors.New("no user id in context")
	}
	role, _ := c.Get("user_role").(string)
	return models.Actor{ID: id, Role: role}, nil
}
