package routes

import (
	"metabolicai/internal/controllers"
	"metabolicai/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterAnalyticsRoutes(router *gin.Engine, analyticsController *controllers.AnalyticsController) {
	analyticsRoutes := router.Group("/analytics")
	analyticsRoutes.Use(middleware.RequireAPIKey(), middleware.RequireUserID())
	{
		analyticsRoutes.GET("", analyticsController.GetAnalytics)
		analyticsRoutes.GET("/feature-importance", analyticsController.GetFeatureImportance)
	}
}
