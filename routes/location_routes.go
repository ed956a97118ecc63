package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/swiftcab/api-go/controllers"
)

func SetupLocationRoutes(protected *gin.RouterGroup, locationController *controllers.LocationController) {
	locations := protected.Group("/locations")
	{
		locations.GET("/categories", locationController.GetCategories)
		locations.GET("/categories/:categoryId", locationController.SearchByCategory)
		locations.GET("/famous", locationController.SearchFamousPlaces)
		locations.GET("/terminals", locationController.SearchTerminals)
		locations.GET("/search", locationController.EnhancedSearch)
	}
}
