package api

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/anshulsood/notes-summarizer/pkg/sdk"
	"github.com/anshulsood/notes-summarizer/pkg/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	health_module "github.com/anshulsood/notes-summarizer/internal/api/modules/health"
	summary_module "github.com/anshulsood/notes-summarizer/internal/api/modules/summary"
)

func Start(cfg *utils.Config) {
	// Initialized configuration settings
	port := cfg.GetWithDefault("API_PORT", "4545")

	// Add app level settings/routes
	engine := NewEngine(cfg)

	// Wire the summary module's production dependencies
	if err := summary_module.Init(cfg); err != nil {
		log.Fatal("[API-MAIN]: Failed to initialize summary module: ", err)
	}

	// Then after performing initial setup, start the server
	if err := engine.Run(":" + port); err != nil {
		log.Fatal("[API-MAIN]: Failed to start server: ", err)
	}
}

// NewEngine builds the gin engine with all routes registered
func NewEngine(cfg *utils.Config) *gin.Engine {
	engine := gin.Default()
	engine.NoRoute(noRouteHandler)

	// Add trusted proxies
	engine.SetTrustedProxies(nil)

	// Add CORS using gin-contrib/cors (https://github.com/gin-contrib/cors for documentation)
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.GetWithDefault("CORS_ALLOWED_ORIGINS", "*"), ","),
		AllowMethods:     []string{"OPTIONS", "GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Root liveness payload
	engine.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, sdk.LivenessResponse{
			Success: true,
			Message: "Your server is running.....",
		})
	})

	// Base group '/api/v1' for all API routes
	baseGroup := engine.Group("/api/v1")

	// Adding custom modules
	health_module.RegisterRoutes(baseGroup)
	summary_module.RegisterRoutes(baseGroup)

	return engine
}

// noRouteHandler responds to unmatched paths with the standard error shape
func noRouteHandler(c *gin.Context) {
	c.JSON(http.StatusNotFound, sdk.ErrorResponse{Error: "Route not found"})
}
