package rest

import (
	"net/http"
	"strconv"

	"card-fraud-system/internal/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// CORSMiddleware возвращает middleware для обработки CORS
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin == "" {
			origin = "*"
		}

		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
		c.Writer.Header().Set("Access-Control-Max-Age", "86400")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// SetupCommonEndpoints добавляет общие endpoints (health, events, stats) к роутеру
func SetupCommonEndpoints(router *gin.Engine) {
	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Events endpoint
	router.GET("/api/v1/events", func(c *gin.Context) {
		limit := 100
		if limitStr := c.Query("limit"); limitStr != "" {
			if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 && parsed <= 500 {
				limit = parsed
			}
		}
		var events []logger.Event
		if eventType := c.Query("type"); eventType != "" {
			events = logger.GetEventsByType(logger.EventType(eventType), limit)
		} else {
			events = logger.GetEvents(limit)
		}
		c.JSON(http.StatusOK, gin.H{"events": events})
	})

	// Stats endpoint
	router.GET("/api/v1/stats", func(c *gin.Context) {
		stats := logger.GetStats()
		c.JSON(http.StatusOK, stats)
	})
}

// RegisterDetectionRoutes регистрирует оповещения и ручной запуск детекции.
// Используется обоими сервисами.
func RegisterDetectionRoutes(api *gin.RouterGroup, h *Handlers) {
	api.POST("/cards/:id/detect", h.DetectFraud)
	api.GET("/cards/:id/alerts", h.ListCardAlerts)

	api.GET("/alerts", h.ListAlerts)
	api.GET("/alerts/critical", h.ListCriticalAlerts)
	api.GET("/alerts/stats", h.AlertStats)
	api.DELETE("/alerts/:id", h.DeleteAlert)
}

// RegisterCardRoutes регистрирует клиентов, карты, операции и отчеты
func RegisterCardRoutes(api *gin.RouterGroup, h *Handlers) {
	customers := api.Group("/customers")
	{
		customers.POST("", h.CreateCustomer)
		customers.GET("", h.ListCustomers)
		customers.GET("/:id", h.GetCustomer)
		customers.GET("/:id/cards", h.ListCustomerCards)
	}

	cards := api.Group("/cards")
	{
		cards.POST("", h.IssueCard)
		cards.GET("/:id", h.GetCard)
		cards.GET("/:id/status", h.GetCardStatus)
		cards.POST("/:id/activate", h.ActivateCard)
		cards.POST("/:id/suspend", h.SuspendCard)
		cards.POST("/:id/block", h.BlockCard)
		cards.GET("/:id/verify-limit", h.VerifyLimit)
		cards.POST("/:id/operations", h.RecordOperation)
		cards.GET("/:id/operations", h.ListCardOperations)
		cards.GET("/:id/operations/recent", h.RecentOperations)
		cards.GET("/:id/operations/total", h.TotalAmount)
	}

	operations := api.Group("/operations")
	{
		operations.GET("", h.FindOperations)
		operations.GET("/generate", h.GenerateRandomOperation)
		operations.GET("/:id", h.GetOperation)
	}

	reports := api.Group("/reports")
	{
		reports.GET("/top-cards", h.TopCards)
		reports.GET("/monthly", h.MonthlyTotals)
		reports.GET("/status-distribution", h.StatusDistribution)
		reports.GET("/daily", h.DailySummary)
		reports.GET("/top-locations", h.TopLocations)
		reports.GET("/average-by-card-type", h.AverageByCardType)
	}
}

// SetupRouter настраивает маршруты REST API card-service
func SetupRouter(handlers *Handlers) *gin.Engine {
	router := gin.New()

	// CORS middleware
	router.Use(CORSMiddleware())

	router.Use(gin.Logger(), gin.Recovery())

	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	// API endpoints
	api := router.Group("/api/v1")
	RegisterCardRoutes(api, handlers)
	RegisterDetectionRoutes(api, handlers)

	// Общие endpoints (health, events, stats)
	SetupCommonEndpoints(router)

	return router
}
