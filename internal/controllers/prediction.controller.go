package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"metabolicai/internal/ml"
	"metabolicai/internal/repository"
)

const minCompleteEntries = 3

type PredictionController struct {
	entryRepo   repository.EntryRepository
	profileRepo repository.UserProfileRepository
	predictor   ml.Predictor
}

func NewPredictionController(entryRepo repository.EntryRepository, profileRepo repository.UserProfileRepository, predictor ml.Predictor) *PredictionController {
	return &PredictionController{entryRepo: entryRepo, profileRepo: profileRepo, predictor: predictor}
}

// GetTDEE godoc
// @Summary Latest TDEE estimate for the identified user
// @Description Requires a profile and at least 3 entries with both weight and calories
// @Tags prediction
// @Produce json
// @Success 200 {object} map[string]interface{} "TDEE estimate"
// @Failure 400 {object} map[string]interface{} "Not enough data or model unavailable"
// @Router /tdee [get]
func (pc *PredictionController) GetTDEE(c *gin.Context) {
	userID := c.GetString("user_id")

	profile, err := pc.profileRepo.FindByUserID(userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load profile",
			"error":   err.Error(),
		})
		return
	}

	entries, err := pc.entryRepo.FindAllByUserID(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve entries",
			"error":   err.Error(),
		})
		return
	}

	complete := 0
	for _, e := range entries {
		if e.Weight != nil && e.Calories != nil {
			complete++
		}
	}
	if profile == nil || len(entries) == 0 || complete < minCompleteEntries {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Not enough data. Log at least 3 entries with both weight and calories.",
		})
		return
	}

	tdee, err := pc.predictor.PredictTDEE(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Prediction failed",
			"error":   err.Error(),
		})
		return
	}
	if tdee == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Model not trained or not enough data.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"tdee": *tdee})
}
