package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/database"
	"github.com/kzi-nastava/mrs-team24-Tricolori-sub001/internal/pkg/models"
)

// MatchRepo implements the match repository interface over postgres for
// driver/ride data and redis for live vehicle locations.
type MatchRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewMatchRepository creates a new match repository
func NewMatchRepository(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *MatchRepo {
	return &MatchRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}
