package gateway

import (
	"errors"
	"fmt"

	"googlemaps.github.io/maps"

	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/circuitbreaker"
	httppkg "github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/http"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/logger"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/models"
	natspkg "github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/nats"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/retry"
)

// RideGW implements the ride gateway: NATS lifecycle events, the match
// service HTTP API and the Google Maps routing/geocoding provider.
type RideGW struct {
	cfg         *models.Config
	natsClient  *natspkg.Client
	matchClient *httppkg.Client
	mapsClient  *maps.Client
	retrier     *retry.Retrier
	matchCB     *circuitbreaker.Breaker
	log         *logger.ZapLogger
}

// NewRideGW creates a new ride gateway
func NewRideGW(cfg *models.Config, natsClient *natspkg.Client, log *logger.ZapLogger) (*RideGW, error) {
	mapsClient, err := maps.NewClient(maps.WithAPIKey(cfg.Routing.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}

	retryCfg := retry.DefaultConfig()
	retryCfg.MaxRetries = cfg.Routing.MaxRetries

	// An HTTP status from the match service means it is up; only
	// transport-level failures should trip the breaker.
	cbCfg := circuitbreaker.DefaultConfig("match-service")
	cbCfg.IsFailure = func(err error) bool {
		var statusErr *httppkg.StatusError
		return err != nil && !errors.As(err, &statusErr)
	}

	return &RideGW{
		cfg:         cfg,
		natsClient:  natsClient,
		matchClient: httppkg.NewClient(cfg.Services.MatchServiceURL, cfg.Routing.Timeout()),
		mapsClient:  mapsClient,
		retrier:     retry.New(retryCfg, log),
		matchCB:     circuitbreaker.New(cbCfg, log),
		log:         log,
	}, nil
}
