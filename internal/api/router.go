package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/sonalirv01/moviesdb/config"
	"github.com/sonalirv01/moviesdb/internal/api/v1/artist"
	"github.com/sonalirv01/moviesdb/internal/api/v1/genre"
	"github.com/sonalirv01/moviesdb/internal/api/v1/movie"
	userRoutes "github.com/sonalirv01/moviesdb/internal/api/v1/user"
	"github.com/sonalirv01/moviesdb/internal/database"
	"github.com/sonalirv01/moviesdb/internal/middleware"
	"github.com/sonalirv01/moviesdb/pkg/logger"
)

func NewRouter() (*gin.Engine, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	_, err = database.Connect(cfg.DSN())
	if err != nil {
		return nil, err
	}

	// The identity cache is optional; the services fall back to the store
	// when no redis client is available.
	if err := database.ConnectRedis(cfg); err != nil {
		logger.Log.Warn("redis unavailable, identity cache disabled")
		database.RedisClient = nil
	}

	router := gin.New()
	router.Use(middleware.Logger(), gin.Recovery())

	// Configure CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:8080"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "access-token"},
		AllowCredentials: true,
		MaxAge:           300, // Maximum age for preflight requests
	}))

	// API v1
	v1 := router.Group("/api/v1")
	{
		userRoutes.RegisterRoutes(v1)
		artist.RegisterRoutes(v1)
		genre.RegisterRoutes(v1)
		movie.RegisterRoutes(v1)
	}

	return router, nil
}
