package server

import (
	"fmt"
	"time"

	"jobboard-api/internal/api/middleware"
	"jobboard-api/internal/api/routes"
	"jobboard-api/internal/app"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type Server struct {
	router *gin.Engine
	app    *app.Application // Store the application container
}

func NewServer(app *app.Application) *Server {
	// gin.New instead of gin.Default: requests are logged through zerolog,
	// not gin's default writer.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())

	// --- Configure and Apply CORS Middleware ---
	log.Info().Strs("origins", app.Config.CORS.AllowedOrigins).Msg("Configuring CORS")
	corsConfig := cors.Config{
		AllowOriginFunc: func(origin string) bool {
			for _, allowed := range app.Config.CORS.AllowedOrigins {
				if allowed == "*" || allowed == origin {
					return true
				}
			}
			return false
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour, // How long the result of a preflight request can be cached
	}
	router.Use(cors.New(corsConfig))

	router.SetTrustedProxies(nil) // Remove the gin warning about untrusted proxies

	return &Server{
		router: router,
		app:    app,
	}
}

func (s *Server) Start() error {
	// Pass the container to routes
	routes.RegisterRoutes(s.router, s.app)

	addr := fmt.Sprintf("%s:%d", s.app.Config.Server.Host, s.app.Config.Server.Port) // Get config from container
	log.Info().Str("addr", addr).Msg("Server starting")
	return s.router.Run(addr)
}
