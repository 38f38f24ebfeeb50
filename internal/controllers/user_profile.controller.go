package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"metabolicai/internal/models"
	"metabolicai/internal/repository"
)

type UserProfileController struct {
	repo repository.UserProfileRepository
}

func NewUserProfileController(repo repository.UserProfileRepository) *UserProfileController {
	return &UserProfileController{repo: repo}
}

// CreateUserProfile godoc
// @Summary Create or replace a user profile
// @Description Upsert the full profile; every field is replaced
// @Tags user
// @Accept json
// @Produce json
// @Param profile body models.UserProfile true "Profile data"
// @Success 200 {object} map[string]interface{} "Profile created/updated"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /user [post]
func (pc *UserProfileController) CreateUserProfile(c *gin.Context) {
	var profile models.UserProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if err := pc.repo.Upsert(&profile); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to save profile",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile created/updated",
		"data":    profile,
	})
}

// PatchUserProfile godoc
// @Summary Partially update a user profile
// @Description Overlay only the provided fields onto the stored profile
// @Tags user
// @Accept json
// @Produce json
// @Param patch body models.UserProfilePatch true "Fields to update"
// @Success 200 {object} map[string]interface{} "Profile patched"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Router /user [patch]
func (pc *UserProfileController) PatchUserProfile(c *gin.Context) {
	var patch models.UserProfilePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	profile, err := pc.repo.FindByUserID(patch.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "User not found",
				"error":   "No profile exists for this user",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load profile",
			"error":   err.Error(),
		})
		return
	}

	merged := *profile
	if patch.Age != nil {
		merged.Age = *patch.Age
	}
	if patch.Gender != nil {
		merged.Gender = *patch.Gender
	}
	if patch.HeightCm != nil {
		merged.HeightCm = patch.HeightCm
	}
	if patch.BodyFatPct != nil {
		merged.BodyFatPct = patch.BodyFatPct
	}
	if patch.CurrentWeight != nil {
		merged.CurrentWeight = patch.CurrentWeight
	}

	if err := pc.repo.Upsert(&merged); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to save profile",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile patched",
		"data":    merged,
	})
}

// GetUserProfile godoc
// @Summary Get the identified user's profile
// @Tags user
// @Produce json
// @Success 200 {object} map[string]interface{} "Profile retrieved"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Router /user [get]
func (pc *UserProfileController) GetUserProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	profile, err := pc.repo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "User not found",
				"error":   "No profile exists for this user",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load profile",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile retrieved",
		"data":    profile,
	})
}
