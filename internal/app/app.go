// internal/app/app.go
package app

import (
	"jobboard-api/config"
	"jobboard-api/internal/cache"
	"jobboard-api/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Application holds core application dependencies.
type Application struct {
	Config      *config.Config
	DBPool      *pgxpool.Pool
	RedisClient *redis.Client
	Validator   *validator.Validate

	RoleCache *cache.RoleCache

	ProfileRepo     storage.ProfileRepository
	CompanyRepo     storage.CompanyRepository
	JobRepo         storage.JobRepository
	ApplicationRepo storage.ApplicationRepository
}
