package api

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tj2904/pp-api/app/cfg"
)

// NewServer creates a new HTTP server with all routes configured
func NewServer(handler *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// Middleware
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		Formatter: func(param gin.LogFormatterParams) string {
			return fmt.Sprintf("%s - [%s] \"%s %s %s %d %s \"%s\" %s\"\n",
				param.ClientIP,
				param.TimeStamp.Format(time.RFC3339),
				param.Method,
				param.Path,
				param.Request.Proto,
				param.StatusCode,
				param.Latency,
				param.Request.UserAgent(),
				param.ErrorMessage,
			)
		},
	}))

	r.Use(gin.Recovery())

	// CORS middleware for API endpoints
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Routes
	setupRoutes(r, handler)

	return r
}

// setupRoutes configures all the application routes
func setupRoutes(r *gin.Engine, handler *Handler) {
	r.GET("/api/healthcheck", handler.HealthCheck)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/vader/live/:category", handler.GetLiveFeed)
		v1.GET("/vader/score/:text", handler.ScoreText)
		v1.GET("/vader/store/:region", handler.StoreFeed)
		v1.GET("/vader/summary/pos/top", handler.GetTopPositive)
		v1.GET("/vader/all", handler.GetAllStrong)
		v1.POST("/og/", handler.GetOpenGraphImage)
	}

	// Root endpoint with basic information
	r.GET("/", func(c *gin.Context) {
		info := gin.H{
			"service":     "Positive Press API",
			"version":     cfg.GetVersion(),
			"description": "API service to support Positive Press, a service that sorts news to find the positive.",
			"endpoints": map[string]string{
				"healthcheck": "/api/healthcheck",
				"live":        "/api/v1/vader/live/<category>",
				"score":       "/api/v1/vader/score/<text>",
				"store":       "/api/v1/vader/store/<region>",
				"top":         "/api/v1/vader/summary/pos/top",
				"all":         "/api/v1/vader/all",
				"og":          "/api/v1/og/?url=<url> (POST)",
			},
		}

		if count, err := handler.articleRepo.Count(); err == nil {
			info["stored_articles"] = count
		}

		c.JSON(200, info)
	})

	// Favicon handler (return 204 to avoid 404s)
	r.GET("/favicon.ico", func(c *gin.Context) {
		c.Status(204)
	})
}
