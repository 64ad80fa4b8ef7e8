package usecase

import (
	"time"

	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/logger"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/models"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/services/match"
)

// MatchUC implements the match.MatchUC interface
type MatchUC struct {
	cfg       *models.Config
	matchRepo match.MatchRepo
	matchGW   match.MatchGW
	log       *logger.ZapLogger
	now       func() time.Time
}

// NewMatchUC creates a new match use case
func NewMatchUC(cfg *models.Config, repo match.MatchRepo, gw match.MatchGW, log *logger.ZapLogger) *MatchUC {
	return &MatchUC{
		cfg:       cfg,
		matchRepo: repo,
		matchGW:   gw,
		log:       log,
		now:       time.Now,
	}
}

// WithClock overrides the use case clock. Tests use this to pin "now".
func (uc *MatchUC) WithClock(now func() time.Time) *MatchUC {
	uc.now = now
	return uc
}
