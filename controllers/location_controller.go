package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/swiftcab/api-go/services"
)

type LocationController struct {
	Service *services.LocationSearchService
}

func NewLocationController(service *services.LocationSearchService) *LocationController {
	return &LocationController{Service: service}
}

type TerminalSearchQuery struct {
	LocationID string `form:"locationId" binding:"required"`
	Category   string `form:"category" binding:"required,oneof=airport train_station"`
}

// GetCategories godoc
// @Summary List all UK location categories
// @Tags locations
// @Produce json
// @Success 200 {array} types.UKLocationCategory
// @Router /locations/categories [get]
func (lc *LocationController) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, lc.Service.GetCategories())
}

// SearchByCategory godoc
// @Summary Search locations in a catalog category
// @Tags locations
// @Produce json
// @Param categoryId path string true "Category ID"
// @Success 200 {object} types.LocationSearchResponse
// @Router /locations/categories/{categoryId} [get]
func (lc *LocationController) SearchByCategory(c *gin.Context) {
	categoryID := c.Param("categoryId")
	c.JSON(http.StatusOK, lc.Service.SearchByCategory(c.Request.Context(), categoryID))
}

// SearchFamousPlaces godoc
// @Summary Search famous places and landmarks
// @Tags locations
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {object} types.LocationSearchResponse
// @Router /locations/famous [get]
func (lc *LocationController) SearchFamousPlaces(c *gin.Context) {
	query := c.Query("q")
	c.JSON(http.StatusOK, lc.Service.SearchFamousPlaces(c.Request.Context(), query))
}

// SearchTerminals godoc
// @Summary Resolve terminals or platforms for an airport or station
// @Tags locations
// @Produce json
// @Param locationId query string true "Parent location ID"
// @Param category query string true "airport or train_station"
// @Success 200 {object} types.LocationSearchResponse
// @Router /locations/terminals [get]
func (lc *LocationController) SearchTerminals(c *gin.Context) {
	var query TerminalSearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "locationId and category (airport|train_station) are required"})
		return
	}
	c.JSON(http.StatusOK, lc.Service.SearchTerminals(c.Request.Context(), query.LocationID, query.Category))
}

// EnhancedSearch godoc
// @Summary General location search across all place types
// @Tags locations
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {object} types.LocationSearchResponse
// @Router /locations/search [get]
func (lc *LocationController) EnhancedSearch(c *gin.Context) {
	query := c.Query("q")
	c.JSON(http.StatusOK, lc.Service.EnhancedSearch(c.Request.Context(), query))
}
