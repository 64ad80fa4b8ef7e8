package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/models"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/services/pricing"
)

// GetLatestPriceList returns the most recently created price list.
func (r *PriceRepo) GetLatestPriceList(ctx context.Context) (*models.PriceList, error) {
	query := `
		SELECT price_list_id, standard_base, luxury_base, van_base, km_price, created_at
		FROM price_lists
		ORDER BY created_at DESC
		LIMIT 1
	`

	var list models.PriceList
	err := r.db.GetContext(ctx, &list, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, pricing.ErrNoPriceList
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query latest price list: %w", err)
	}
	return &list, nil
}

// CreatePriceList inserts a new price list row.
func (r *PriceRepo) CreatePriceList(ctx context.Context, list *models.PriceList) error {
	query := `
		INSERT INTO price_lists (price_list_id, standard_base, luxury_base, van_base, km_price, created_at)
		VALUES (:price_list_id, :standard_base, :luxury_base, :van_base, :km_price, :created_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, list); err != nil {
		return fmt.Errorf("failed to insert price list: %w", err)
	}
	return nil
}
