package usecase

import (
	"time"

	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/logger"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/models"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/services/pricing"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/services/rides"
)

// RideUC implements the rides.RideUC interface
type RideUC struct {
	cfg       *models.Config
	rideRepo  rides.RideRepo
	rideGW    rides.RideGW
	pricingUC pricing.PricingUC
	log       *logger.ZapLogger
	now       func() time.Time
}

// NewRideUC creates a new ride use case
func NewRideUC(
	cfg *models.Config,
	repo rides.RideRepo,
	gw rides.RideGW,
	pricingUC pricing.PricingUC,
	log *logger.ZapLogger,
) *RideUC {
	return &RideUC{
		cfg:       cfg,
		rideRepo:  repo,
		rideGW:    gw,
		pricingUC: pricingUC,
		log:       log,
		now:       time.Now,
	}
}

// WithClock overrides the use case clock. Tests use this to pin "now".
func (uc *RideUC) WithClock(now func() time.Time) *RideUC {
	uc.now = now
	return uc
}
