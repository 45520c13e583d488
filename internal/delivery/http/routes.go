package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/productlens/backend/config"
	"github.com/productlens/backend/web"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// Scanner page and its assets
	router.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", web.IndexHTML())
	})
	router.StaticFS("/static", http.FS(web.StaticFS()))

	// API v1 routes, rate limited per client IP
	limiter := NewClientLimiter(cfg.RateLimit.PerIPPerMinute)

	v1 := router.Group("/api/v1")
	v1.Use(limiter.Middleware())
	{
		v1.POST("/scan", handler.ScanBarcode)
		v1.POST("/upload", handler.UploadImage)
	}

	return router
}
