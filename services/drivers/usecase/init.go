package usecase

import (
	"time"

	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/logger"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/models"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/services/drivers"
)

// DriverUC implements the drivers.DriverUC interface
type DriverUC struct {
	cfg        *models.Config
	driverRepo drivers.DriverRepo
	driverGW   drivers.DriverGW
	log        *logger.ZapLogger
	now        func() time.Time
}

// NewDriverUC creates a new driver use case
func NewDriverUC(cfg *models.Config, repo drivers.DriverRepo, gw drivers.DriverGW, log *logger.ZapLogger) *DriverUC {
	return &DriverUC{
		cfg:        cfg,
		driverRepo: repo,
		driverGW:   gw,
		log:        log,
		now:        time.Now,
	}
}

// WithClock overrides the use case clock. Tests use this to pin "now".
func (uc *DriverUC) WithClock(now func() time.Time) *DriverUC {
	uc.now = now
	return uc
}
