package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/database"
)

// DriverRepo implements the driver repository interface over postgres
// for daily logs and redis for live vehicle locations.
type DriverRepo struct {
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewDriverRepository creates a new driver repository
func NewDriverRepository(db *sqlx.DB, redisClient *database.RedisClient) *DriverRepo {
	return &DriverRepo{db: db, redisClient: redisClient}
}
