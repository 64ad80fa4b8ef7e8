package usecase

import (
	"time"

	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/logger"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/services/pricing"
)

// PricingUC implements the pricing.PricingUC interface
type PricingUC struct {
	priceRepo pricing.PriceRepo
	log       *logger.ZapLogger
	now       func() time.Time
}

// NewPricingUC creates a new pricing use case
func NewPricingUC(repo pricing.PriceRepo, log *logger.ZapLogger) *PricingUC {
	return &PricingUC{
		priceRepo: repo,
		log:       log,
		now:       time.Now,
	}
}

// WithClock overrides the use case clock. Tests use this to pin "now".
func (uc *PricingUC) WithClock(now func() time.Time) *PricingUC {
	uc.now = now
	return uc
}
