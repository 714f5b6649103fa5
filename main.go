package main

import (
	"os"
	"os/signal"
	"syscall"

	"jobboard-api/config"
	"jobboard-api/internal/app"
	"jobboard-api/internal/cache"
	"jobboard-api/internal/database"
	"jobboard-api/internal/server"
	"jobboard-api/internal/storage/postgres"

	_ "jobboard-api/docs" // Import generated docs (created by swag init)

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// @title           Job Board API
// @version         1.0
// @description     REST API for a job board: employer and job seeker accounts, job postings, applications, and role-specific dashboards.

// @contact.name   API Support
// @contact.url    http://www.example.com/support
// @contact.email  support@example.com

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api/v1
// @schemes   http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// --- Initialize Redis Client ---
	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer redisClient.Close()

	dbPool, err := database.NewConnectionPool(cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer dbPool.Close()

	validate := validator.New()

	application := &app.Application{
		Config:      cfg,
		DBPool:      dbPool,
		RedisClient: redisClient,
		Validator:   validate,

		RoleCache: cache.NewRoleCache(redisClient, cfg.Cache.RoleTTL),

		ProfileRepo:     postgres.NewProfileRepo(dbPool),
		CompanyRepo:     postgres.NewCompanyRepo(dbPool),
		JobRepo:         postgres.NewJobRepo(dbPool),
		ApplicationRepo: postgres.NewApplicationRepo(dbPool),
	}

	srv := server.NewServer(application)

	// --- Graceful Shutdown Handling ---
	go func() {
		if err := srv.Start(); err != nil {
			log.Error().Err(err).Msg("Server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // Block until a signal is received

	log.Info().Msg("Shutting down server")

	//Gin shutdowns on its own

	log.Info().Msg("Application gracefully stopped")
}
