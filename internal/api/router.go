package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hoops-content-api/internal/config"
	"github.com/hoops-content-api/internal/service"
	"github.com/rs/zerolog"
)

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())

	// Handlers
	articleHandler := NewArticleHandler(services, cfg, log)
	teamHandler := NewTeamHandler(services, log)
	engagementHandler := NewEngagementHandler(services, log)

	// Health check
	router.GET("/health", healthCheck)

	// API v1
	v1 := router.Group("/v1")
	{
		articles := v1.Group("/articles")
		{
			articles.GET("", articleHandler.ListArticles)
			articles.POST("", articleHandler.CreateArticle)
			articles.GET("/:slug", articleHandler.GetArticle)
			articles.GET("/:slug/related", articleHandler.GetRelated)
			articles.POST("/:slug/track-view", articleHandler.TrackView)
			articles.GET("/:slug/comments", engagementHandler.ListComments)
			articles.POST("/:slug/comments", engagementHandler.AddComment)
		}

		v1.GET("/categories/:slug/articles", articleHandler.ListByCategory)

		teams := v1.Group("/teams")
		{
			teams.GET("", teamHandler.ListTeams)
			teams.GET("/:id", teamHandler.GetTeam)
		}

		v1.GET("/players/:id", teamHandler.GetPlayer)

		v1.POST("/newsletter", engagementHandler.Subscribe)
	}

	return router
}

// healthCheck returns the health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "hoops-content-api",
	})
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Msg("Request completed")
	}
}

// corsMiddleware handles CORS
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-User-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
