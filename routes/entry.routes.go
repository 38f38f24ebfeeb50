package routes

import (
	"metabolicai/internal/controllers"
	"metabolicai/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterEntryRoutes(router *gin.Engine, entryController *controllers.EntryController) {
	entryRoutes := router.Group("/entry")
	entryRoutes.Use(middleware.RequireAPIKey(), middleware.RequireUserID())
	{
		entryRoutes.POST("", entryController.CreateEntry)
		entryRoutes.PATCH("", entryController.PatchEntry)
	}

	historyRoutes := router.Group("/history")
	historyRoutes.Use(middleware.RequireAPIKey(), middleware.RequireUserID())
	{
		historyRoutes.GET("", entryController.GetHistory)
	}
}
