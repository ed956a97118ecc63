package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/swiftcab/api-go/config"
	"github.com/swiftcab/api-go/routes"
	"github.com/swiftcab/api-go/services"
)

func main() {
	// Set up logging to stdout
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg := config.Load()

	if cfg.MapboxToken == "" {
		log.Println("MAPBOX_ACCESS_TOKEN is not set; location searches will return a config error")
	}

	// Initialize the location search service
	geocoder := config.NewMapboxClient(cfg.MapboxToken)
	searchService := services.NewLocationSearchService(cfg.MapboxToken, geocoder)

	// Create a new Gin router
	r := gin.Default()

	// Add logging middleware
	r.Use(gin.LoggerWithWriter(os.Stdout))

	// Initialize routes
	routes.SetupRoutes(r, cfg, searchService)

	// Start the server
	log.Printf("Starting server on port %s", cfg.Port)
	r.Run(":" + cfg.Port)
}
