package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/swiftcab/api-go/controllers"
)

func SetupFareRoutes(public *gin.RouterGroup, fareController *controllers.FareController) {
	fare := public.Group("/fare")
	{
		fare.POST("/estimate", fareController.EstimateFare)
	}
}
