package routes

import (
	"jobboard-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterDashboardRoutes registers the role-specific dashboard routes
func RegisterDashboardRoutes(
	rg *gin.RouterGroup,
	dashboardHandler *handlers.DashboardHandler,
	authMiddleware gin.HandlerFunc,
	employerOnly gin.HandlerFunc,
	seekerOnly gin.HandlerFunc,
) {
	dashboard := rg.Group("/dashboard")
	dashboard.Use(authMiddleware)
	{
		dashboard.GET("/employer", employerOnly, dashboardHandler.EmployerDashboard)
		dashboard.GET("/seeker", seekerOnly, dashboardHandler.SeekerDashboard)
	}
}
