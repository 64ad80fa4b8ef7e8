package pricing

import (
	"context"

	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/models"
)

// PricingUC defines the interface for fare calculation business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/kzi-nastava/mrs-team24-Tricolori-sub001/services/pricing PricingUC
type PricingUC interface {
	// Estimate computes the fare for a trip of the given category and
	// distance against the currently active price list.
	Estimate(ctx context.Context, category models.VehicleCategory, distanceKm float64) (float64, error)
	GetActivePriceList(ctx context.Context) (*models.PriceList, error)
	CreatePriceList(ctx context.Context, list models.PriceList) (*models.PriceList, error)
}
