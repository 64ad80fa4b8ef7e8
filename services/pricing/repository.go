package pricing

import (
	"context"

	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/models"
)

// PriceRepo defines the interface for price list persistence
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/kzi-nastava/mrs-team24-Tricolori-sub001/services/pricing PriceRepo
type PriceRepo interface {
	// GetLatestPriceList returns the most recently created price list, or
	// ErrNoPriceList when none exists.
	GetLatestPriceList(ctx context.Context) (*models.PriceList, error)
	CreatePriceList(ctx context.Context, list *models.PriceList) error
}
