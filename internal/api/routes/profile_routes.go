package routes

import (
	"jobboard-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterProfileRoutes registers all routes related to profiles
func RegisterProfileRoutes(rg *gin.RouterGroup, profileHandler *handlers.ProfileHandler, authMiddleware gin.HandlerFunc) {
	profiles := rg.Group("/profiles")
	profiles.Use(authMiddleware)
	{
		// "me" must be registered alongside ":id"; gin resolves the static
		// segment first.
		profiles.PUT("/me", profileHandler.UpdateProfile)
		profiles.GET("/:id", profileHandler.GetProfile)
	}
}
