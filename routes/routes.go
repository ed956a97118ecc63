package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/swiftcab/api-go/config"
	"github.com/swiftcab/api-go/controllers"
	"github.com/swiftcab/api-go/middleware"
	"github.com/swiftcab/api-go/services"
)

func SetupRoutes(r *gin.Engine, cfg *config.AppConfig, searchService *services.LocationSearchService) {
	// Initialize controllers
	locationController := controllers.NewLocationController(searchService)
	fareController := controllers.NewFareController(cfg.FareAPIURL)

	// Public routes
	public := r.Group("/api")
	{
		public.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})
		SetupFareRoutes(public, fareController)
	}

	// Protected routes
	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		SetupLocationRoutes(protected, locationController)
	}
}
