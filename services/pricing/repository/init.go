package repository

import (
	"github.com/jmoiron/sqlx"
)

// PriceRepo implements the pricing repository interface over postgres.
type PriceRepo struct {
	db *sqlx.DB
}

// NewPriceRepository creates a new price repository
func NewPriceRepository(db *sqlx.DB) *PriceRepo {
	return &PriceRepo{db: db}
}
