package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/swiftcab/api-go/types"
)

// FareController proxies fare estimation to the external fare API. It holds
// no pricing logic; requests are validated, forwarded and the typed response
// relayed as-is.
type FareController struct {
	FareAPIURL string
	HTTPClient *http.Client
}

func NewFareController(fareAPIURL string) *FareController {
	return &FareController{
		FareAPIURL: fareAPIURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// EstimateFare godoc
// @Summary Get a fare estimate for a journey
// @Tags fare
// @Accept json
// @Produce json
// @Param request body types.FareEstimateRequest true "Journey details"
// @Success 200 {object} types.FareEstimateResponse
// @Router /fare/estimate [post]
func (fc *FareController) EstimateFare(c *gin.Context) {
	var request types.FareEstimateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if fc.FareAPIURL == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Fare API is not configured"})
		return
	}

	payload, err := json.Marshal(request)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode fare request"})
		return
	}

	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodPost, fc.FareAPIURL, bytes.NewReader(payload))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build fare request"})
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := fc.HTTPClient.Do(req)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Fare service unavailable"})
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Fare service returned an error"})
		return
	}

	var estimate types.FareEstimateResponse
	if err := json.NewDecoder(resp.Body).Decode(&estimate); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Invalid response from fare service"})
		return
	}

	c.JSON(http.StatusOK, estimate)
}
