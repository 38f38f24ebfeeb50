package controllers

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"metabolicai/internal/ml"
	"metabolicai/internal/models"
	"metabolicai/internal/repository"
)

const trendWindowCap = 7

type AnalyticsController struct {
	entryRepo repository.EntryRepository
	predictor ml.Predictor
}

func NewAnalyticsController(entryRepo repository.EntryRepository, predictor ml.Predictor) *AnalyticsController {
	return &AnalyticsController{entryRepo: entryRepo, predictor: predictor}
}

// GetAnalytics godoc
// @Summary Weight change, calorie average, TDEE trend and feature importance
// @Description Requires at least 2 logged entries
// @Tags analytics
// @Produce json
// @Success 200 {object} models.Analytics "Analytics assembled"
// @Failure 400 {object} map[string]interface{} "Not enough entries"
// @Router /analytics [get]
func (ac *AnalyticsController) GetAnalytics(c *gin.Context) {
	userID := c.GetString("user_id")

	entries, err := ac.entryRepo.FindAllByUserID(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve entries",
			"error":   err.Error(),
		})
		return
	}
	if len(entries) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Not enough entries for analytics.",
		})
		return
	}

	var first, last *float64
	for i := range entries {
		if entries[i].Weight != nil {
			first = entries[i].Weight
			break
		}
	}
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].Weight != nil {
			last = entries[i].Weight
			break
		}
	}
	var weightChange *float64
	if first != nil && last != nil {
		change := roundTo2(*last - *first)
		weightChange = &change
	}

	caloriesSum, caloriesCount := 0.0, 0
	for _, e := range entries {
		if e.Calories != nil {
			caloriesSum += *e.Calories
			caloriesCount++
		}
	}
	denom := caloriesCount
	if denom < 1 {
		denom = 1
	}
	avgCalories := roundTo2(caloriesSum / float64(denom))

	window := len(entries)
	if window > trendWindowCap {
		window = trendWindowCap
	}
	trend, err := ac.predictor.Trend(userID, window)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to compute TDEE trend",
			"error":   err.Error(),
		})
		return
	}

	importance, err := ac.predictor.FeatureImportance(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to compute feature importance",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Analytics{
		WeightChange:      weightChange,
		AvgCalories:       avgCalories,
		TDEETrend:         trend,
		FeatureImportance: importance,
	})
}

// GetFeatureImportance godoc
// @Summary Feature-importance mapping of the trained model
// @Tags analytics
// @Produce json
// @Success 200 {object} map[string]float64 "Importance per feature"
// @Failure 400 {object} map[string]interface{} "Model not trained"
// @Router /analytics/feature-importance [get]
func (ac *AnalyticsController) GetFeatureImportance(c *gin.Context) {
	userID := c.GetString("user_id")

	importance, err := ac.predictor.FeatureImportance(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to compute feature importance",
			"error":   err.Error(),
		})
		return
	}
	if len(importance) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Not enough data or model not trained yet.",
		})
		return
	}

	c.JSON(http.StatusOK, importance)
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
