package routes

import (
	"metabolicai/internal/controllers"
	"metabolicai/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterPredictionRoutes(router *gin.Engine, predictionController *controllers.PredictionController) {
	tdeeRoutes := router.Group("/tdee")
	tdeeRoutes.Use(middleware.RequireAPIKey(), middleware.RequireUserID())
	{
		tdeeRoutes.GET("", predictionController.GetTDEE)
	}
}
