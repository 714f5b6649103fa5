package routes

import (
	"jobboard-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers all routes related to authentication
func RegisterAuthRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler, authMiddleware gin.HandlerFunc) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authMiddleware, authHandler.Logout)
		auth.GET("/me", authMiddleware, authHandler.Me)
	}
}
