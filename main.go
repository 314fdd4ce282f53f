package main

import (
	"log"

	"github.com/sonalirv01/moviesdb/config"
	"github.com/sonalirv01/moviesdb/internal/api"
	"github.com/sonalirv01/moviesdb/internal/database"
	"github.com/sonalirv01/moviesdb/internal/models"
	"github.com/sonalirv01/moviesdb/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	err = logger.InitLogger(&logger.Config{
		Level:      cfg.LogLevel,
		Filename:   cfg.LogFilename,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
	})
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	router, err := api.NewRouter()
	if err != nil {
		log.Fatalf("failed to create router: %v", err)
	}

	// Migrate the schema
	err = database.DB.AutoMigrate(&models.User{}, &models.Artist{}, &models.Genre{}, &models.Movie{})
	if err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
