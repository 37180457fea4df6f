package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"food-delivery-api/config"
	"food-delivery-api/database"
	"food-delivery-api/handlers"
	"food-delivery-api/routes"
	"food-delivery-api/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Configuration error: ", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to initialize logger: ", err)
	}
	defer logger.Sync()

	gin.SetMode(cfg.GinMode)

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}
	logger.Info("database connected and migrated", zap.String("path", cfg.DBPath))

	issuer, err := services.NewTokenIssuer(cfg.JWT)
	if err != nil {
		logger.Fatal("failed to construct token issuer", zap.Error(err))
	}

	authService := services.NewAuthService(db, logger)
	catalogService := services.NewCatalogService(db)
	orderService := services.NewOrderService(db)

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(logger))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Food Delivery API is running",
			"status":  "active",
			"endpoints": gin.H{
				"auth":        "/api/auth",
				"restaurants": "/api/restaurants",
				"orders":      "/api/orders",
				"health":      "/health",
			},
		})
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"service":   "Food Delivery API",
			"timestamp": time.Now().UTC(),
		})
	})

	routes.SetupRoutes(
		r,
		issuer,
		handlers.NewAuthHandler(authService, issuer),
		handlers.NewRestaurantHandler(catalogService),
		handlers.NewMenuItemHandler(catalogService),
		handlers.NewOrderHandler(orderService),
	)

	logger.Info("server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}

// requestLogger logs method, path, status and latency for every request.
func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
