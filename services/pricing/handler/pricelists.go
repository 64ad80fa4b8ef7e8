package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/models"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/utils"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/services/pricing"
)

// PriceListHandler exposes price list reads and the admin write.
type PriceListHandler struct {
	pricingUC pricing.PricingUC
}

// NewPriceListHandler creates a new price list HTTP handler
func NewPriceListHandler(pricingUC pricing.PricingUC) *PriceListHandler {
	return &PriceListHandler{pricingUC: pricingUC}
}

// GetActive handles GET /pricelists/active
func (h *PriceListHandler) GetActive(c echo.Context) error {
	list, err := h.pricingUC.GetActivePriceList(c.Request().Context())
	if err != nil {
		if errors.Is(err, pricing.ErrNoPriceList) {
			return utils.NotFoundResponse(c, pricing.ErrNoPriceList.Error())
		}
		return utils.InternalServerErrorResponse(c, "failed to load price list")
	}
	return c.JSON(http.StatusOK, list)
}

// Create handles POST /pricelists. Admin only.
func (h *PriceListHandler) Create(c echo.Context) error {
	role, _ := c.Get("user_role").(string)
	if role != models.RoleAdmin {
		return utils.ForbiddenResponse(c, "only admins may create price lists")
	}

	var req models.PriceList
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid price list")
	}
	if req.StandardBase < 0 || req.LuxuryBase < 0 || req.VanBase < 0 || req.KmPrice < 0 {
		return utils.BadRequestResponse(c, "prices must not be negative")
	}

	list, err := h.pricingUC.CreatePriceList(c.Request().Context(), req)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "failed to create price list")
	}
	return c.JSON(http.StatusCreated, list)
}
