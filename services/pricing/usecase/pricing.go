package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/logger"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/models"
)

// Estimate computes the fare for the given category and distance from
// the latest price list. The computation itself is pure; only the list
// lookup touches storage.
func (uc *PricingUC) Estimate(ctx context.Context, category models.VehicleCategory, distanceKm float64) (float64, error) {
	list, err := uc.priceRepo.GetLatestPriceList(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load active price list: %w", err)
	}
	return list.PriceFor(category, distanceKm), nil
}

// GetActivePriceList returns the price list currently in effect.
func (uc *PricingUC) GetActivePriceList(ctx context.Context) (*models.PriceList, error) {
	return uc.priceRepo.GetLatestPriceList(ctx)
}

// CreatePriceList stores a new price list. Existing lists are never
// touched; the new one takes effect by having the latest created_at.
func (uc *PricingUC) CreatePriceList(ctx context.Context, list models.PriceList) (*models.PriceList, error) {
	list.PriceListID = uuid.New()
	list.CreatedAt = uc.now()

	if err := uc.priceRepo.CreatePriceList(ctx, &list); err != nil {
		return nil, fmt.Errorf("failed to create price list: %w", err)
	}

	uc.log.Info("price list created",
		logger.String("price_list_id", list.PriceListID.String()),
		logger.Float64("km_price", list.KmPrice))
	return &list, nil
}
