package main

import (
	"net/http"
	"strconv"

	"fleetsecure-api/config"
	"fleetsecure-api/handlers"
	"fleetsecure-api/logger"
	"fleetsecure-api/routes"
	"fleetsecure-api/service"
	"fleetsecure-api/store"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.ServiceName)

	gin.SetMode(cfg.GinMode)

	db, err := config.OpenDB(cfg)
	if err != nil {
		log.Fatal("failed to open database", logger.Err(err))
	}
	log.Info("database connected and migrated", logger.String("path", cfg.DBPath))

	svc := service.New(store.New(db))
	h := handlers.New(svc)

	// Gin router with default middleware (logger + recovery)
	r := gin.Default()

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "FleetSecure Registry API",
			"version": "1.0.0",
		})
	})

	routes.SetupRoutes(r, h)

	log.Info("server starting", logger.Int("port", cfg.Port))
	if err := r.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		log.Fatal("failed to start server", logger.Err(err))
	}
}
