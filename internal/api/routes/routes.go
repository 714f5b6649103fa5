// internal/api/routes/routes.go
package routes

import (
	"jobboard-api/internal/api/handlers"
	"jobboard-api/internal/api/middleware"
	"jobboard-api/internal/app"
	"jobboard-api/internal/models"
	"jobboard-api/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up the API routes by calling resource-specific registration functions
func RegisterRoutes(router *gin.Engine, application *app.Application) {

	// --- Base API Group ---
	apiV1 := router.Group("/api/v1")

	// --- Services ---
	authService := services.NewAuthService(application.ProfileRepo, application.RoleCache, application.Config.JWT.Secret, application.Config.JWT.Expiration)
	profileService := services.NewProfileService(application.ProfileRepo)
	companyService := services.NewCompanyService(application.DBPool, application.CompanyRepo, application.ProfileRepo)
	jobService := services.NewJobService(application.JobRepo, application.ApplicationRepo, application.ProfileRepo)
	applicationService := services.NewApplicationService(application.ApplicationRepo, application.JobRepo, application.ProfileRepo)
	dashboardService := services.NewDashboardService(application.JobRepo, application.ApplicationRepo, application.ProfileRepo, application.CompanyRepo)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService, application.Validator)
	profileHandler := handlers.NewProfileHandler(profileService, application.Validator)
	companyHandler := handlers.NewCompanyHandler(companyService, application.Validator)
	jobHandler := handlers.NewJobHandler(jobService, application.Validator)
	applicationHandler := handlers.NewApplicationHandler(applicationService, application.Validator)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// --- Middleware ---
	authMiddleware := middleware.JWTAuthMiddleware(application.Config.JWT.Secret)
	employerOnly := middleware.RequireRole(models.RoleEmployer, application.RoleCache, application.ProfileRepo)
	seekerOnly := middleware.RequireRole(models.RoleJobSeeker, application.RoleCache, application.ProfileRepo)

	// --- Register Resource Routes ---
	RegisterAuthRoutes(apiV1, authHandler, authMiddleware)
	RegisterProfileRoutes(apiV1, profileHandler, authMiddleware)
	RegisterCompanyRoutes(apiV1, companyHandler, authMiddleware, employerOnly)
	RegisterJobRoutes(apiV1, jobHandler, applicationHandler, authMiddleware, employerOnly, seekerOnly)
	RegisterApplicationRoutes(apiV1, applicationHandler, authMiddleware, employerOnly, seekerOnly)
	RegisterDashboardRoutes(apiV1, dashboardHandler, authMiddleware, employerOnly, seekerOnly)

	// --- Health Check ---
	router.GET("/health", handlers.HealthCheck)

	log.Info().Msg("Configuring Swagger UI handler")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
