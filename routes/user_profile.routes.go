package routes

import (
	"metabolicai/internal/controllers"
	"metabolicai/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterUserProfileRoutes(router *gin.Engine, userProfileController *controllers.UserProfileController) {
	userRoutes := router.Group("/user")
	userRoutes.Use(middleware.RequireAPIKey())
	{
		userRoutes.POST("", userProfileController.CreateUserProfile)
		userRoutes.PATCH("", userProfileController.PatchUserProfile)
		userRoutes.GET("", middleware.RequireUserID(), userProfileController.GetUserProfile)
	}
}
