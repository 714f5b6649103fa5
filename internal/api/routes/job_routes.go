package routes

import (
	"jobboard-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterJobRoutes registers all routes related to jobs. Browsing is public;
// management requires an employer and applying requires a job seeker.
func RegisterJobRoutes(
	rg *gin.RouterGroup,
	jobHandler *handlers.JobHandler,
	applicationHandler *handlers.ApplicationHandler,
	authMiddleware gin.HandlerFunc,
	employerOnly gin.HandlerFunc,
	seekerOnly gin.HandlerFunc,
) {
	jobs := rg.Group("/jobs")
	{
		jobs.GET("", jobHandler.ListJobs)
		jobs.GET("/mine", authMiddleware, employerOnly, jobHandler.ListMyJobs)
		jobs.GET("/:id", jobHandler.GetJob)
		jobs.POST("", authMiddleware, employerOnly, jobHandler.CreateJob)
		jobs.PUT("/:id", authMiddleware, employerOnly, jobHandler.UpdateJob)
		jobs.PATCH("/:id/status", authMiddleware, employerOnly, jobHandler.UpdateJobStatus)

		jobs.POST("/:id/applications", authMiddleware, seekerOnly, applicationHandler.SubmitApplication)
		jobs.GET("/:id/applications", authMiddleware, employerOnly, applicationHandler.ListJobApplications)
	}
}
