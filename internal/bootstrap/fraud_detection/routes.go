package fraud_detection

import (
	"log"
	"net/http"

	"card-fraud-system/internal/api/rest"
	"card-fraud-system/internal/logger"
	"card-fraud-system/internal/redis"
	"card-fraud-system/internal/services"
	"card-fraud-system/internal/storage"

	"github.com/gin-gonic/gin"
)

// SetupRoutes настраивает маршруты для fraud detection service.
// cache может быть nil.
func SetupRoutes(router *gin.Engine, handlers *rest.Handlers, cleaner storage.Cleaner, cache redis.ClientInterface, metricsHandler http.Handler) {
	api := router.Group("/api/v1")
	rest.RegisterDetectionRoutes(api, handlers)

	api.DELETE("/data", func(c *gin.Context) {
		if err := cleaner.ClearAll(c.Request.Context()); err != nil {
			log.Printf("Error clearing storage: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear data"})
			return
		}

		if cache != nil {
			if err := cache.ClearCardData(c.Request.Context()); err != nil {
				log.Printf("Warning: Failed to clear Redis data: %v", err)
			}
		}

		logger.LogEvent(logger.EventDBUpdated, services.ServiceFraudDetection, logger.ComponentSQLite, map[string]interface{}{
			"action": "database_cleared",
		})

		c.JSON(http.StatusOK, gin.H{
			"message":       "All cards, operations, alerts and cache cleared successfully",
			"clear_storage": true,
		})
	})

	router.GET("/metrics", gin.WrapH(metricsHandler))

	// Используем общие endpoints (health, events, stats)
	rest.SetupCommonEndpoints(router)
}
