package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/rainwise/rainwise/internal/pkg/database"
	"github.com/rainwise/rainwise/internal/pkg/models"
)

// AuthRepo implements the auth repository over Postgres (verification codes,
// users) and Redis (rate-limit windows).
type AuthRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewAuthRepo creates a new auth repository instance
func NewAuthRepo(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *AuthRepo {
	return &AuthRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}
