package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/logger"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/models"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/services/pricing"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/services/pricing/mocks"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/services/pricing/usecase"
)

func TestEstimate(t *testing.T) {
	list := &models.PriceList{
		StandardBase: 100,
		LuxuryBase:   250,
		VanBase:      180,
		KmPrice:      50,
	}

	tests := []struct {
		name       string
		category   models.VehicleCategory
		distanceKm float64
		want       float64
	}{
		{"standard ride", models.VehicleStandard, 3.5, 275},
		{"luxury ride", models.VehicleLuxury, 2, 350},
		{"van ride", models.VehicleVan, 1, 230},
		{"unknown category falls back to standard", models.VehicleCategory("RICKSHAW"), 3.5, 275},
		{"zero distance is base only", models.VehicleStandard, 0, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			priceRepo := mocks.NewMockPriceRepo(ctrl)
			uc := usecase.NewPricingUC(priceRepo, logger.NewNopLogger())

			priceRepo.EXPECT().GetLatestPriceList(gomock.Any()).Return(list, nil)

			got, err := uc.Estimate(context.Background(), tt.category, tt.distanceKm)

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEstimate_NoPriceList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	priceRepo := mocks.NewMockPriceRepo(ctrl)
	uc := usecase.NewPricingUC(priceRepo, logger.NewNopLogger())

	priceRepo.EXPECT().GetLatestPriceList(gomock.Any()).Return(nil, pricing.ErrNoPriceList)

	_, err := uc.Estimate(context.Background(), models.VehicleStandard, 3.5)

	assert.ErrorIs(t, err, pricing.ErrNoPriceList)
}

func TestCreatePriceList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2024, 5, 10, 14, 0, 0, 0, time.UTC)
	priceRepo := mocks.NewMockPriceRepo(ctrl)
	uc := usecase.NewPricingUC(priceRepo, logger.NewNopLogger()).
		WithClock(func() time.Time { return now })

	priceRepo.EXPECT().CreatePriceList(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, list *models.PriceList) error {
			assert.NotEqual(t, [16]byte{}, [16]byte(list.PriceListID))
			assert.Equal(t, now, list.CreatedAt)
			return nil
		})

	created, err := uc.CreatePriceList(context.Background(), models.PriceList{
		StandardBase: 120,
		LuxuryBase:   260,
		VanBase:      200,
		KmPrice:      55,
	})

	assert.NoError(t, err)
	assert.Equal(t, now, created.CreatedAt)
	assert.Equal(t, 55.0, created.KmPrice)
}
