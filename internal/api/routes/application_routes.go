package routes

import (
	"jobboard-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterApplicationRoutes registers all routes related to applications
func RegisterApplicationRoutes(
	rg *gin.RouterGroup,
	applicationHandler *handlers.ApplicationHandler,
	authMiddleware gin.HandlerFunc,
	employerOnly gin.HandlerFunc,
	seekerOnly gin.HandlerFunc,
) {
	applications := rg.Group("/applications")
	applications.Use(authMiddleware)
	{
		applications.GET("/mine", seekerOnly, applicationHandler.ListMyApplications)
		applications.GET("/:id", applicationHandler.GetApplication)
		applications.PATCH("/:id/status", employerOnly, applicationHandler.UpdateApplicationStatus)
	}
}
