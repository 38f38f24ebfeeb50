package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"metabolicai/internal/logger"
	"metabolicai/internal/ml"
	"metabolicai/internal/models"
	"metabolicai/internal/repository"
)

type EntryController struct {
	repo      repository.EntryRepository
	predictor ml.Predictor
	log       *logger.Logger
}

func NewEntryController(repo repository.EntryRepository, predictor ml.Predictor, log *logger.Logger) *EntryController {
	return &EntryController{repo: repo, predictor: predictor, log: log}
}

// CreateEntry godoc
// @Summary Log or update a daily entry
// @Description Upsert the entry for the given date; omitted fields keep their stored value. Triggers a synchronous model retrain.
// @Tags entries
// @Accept json
// @Produce json
// @Param entry body models.Entry true "Entry data"
// @Success 200 {object} map[string]interface{} "Entry logged"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Router /entry [post]
func (ec *EntryController) CreateEntry(c *gin.Context) {
	userID := c.GetString("user_id")

	var entry models.Entry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}
	entry.UserID = userID

	if err := ec.repo.Upsert(&entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to save entry",
			"error":   err.Error(),
		})
		return
	}

	ec.retrain(userID)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Entry logged",
		"data":    entry,
	})
}

// PatchEntry godoc
// @Summary Partially update an existing entry
// @Description Overlay only the provided fields onto the stored entry for that date. Triggers a synchronous model retrain.
// @Tags entries
// @Accept json
// @Produce json
// @Param patch body models.EntryPatch true "Fields to update"
// @Success 200 {object} map[string]interface{} "Entry patched"
// @Failure 404 {object} map[string]interface{} "Entry not found"
// @Router /entry [patch]
func (ec *EntryController) PatchEntry(c *gin.Context) {
	userID := c.GetString("user_id")

	var patch models.EntryPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	entry, err := ec.repo.FindByUserIDAndDate(userID, patch.Date)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Entry not found for that date",
				"error":   "No entry exists for this user and date",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to load entry",
			"error":   err.Error(),
		})
		return
	}

	if patch.Weight != nil {
		entry.Weight = patch.Weight
	}
	if patch.Calories != nil {
		entry.Calories = patch.Calories
	}

	if err := ec.repo.Upsert(entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to save entry",
			"error":   err.Error(),
		})
		return
	}

	ec.retrain(userID)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Entry patched",
		"data":    entry,
	})
}

// GetHistory godoc
// @Summary List all entries for the identified user
// @Tags entries
// @Produce json
// @Success 200 {object} map[string]interface{} "Entries retrieved"
// @Router /history [get]
func (ec *EntryController) GetHistory(c *gin.Context) {
	userID := c.GetString("user_id")

	entries, err := ec.repo.FindAllByUserID(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve entries",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Entries retrieved",
		"data":    entries,
	})
}

// retrain refits the user's model after a write. Insufficient data is
// logged and dropped: data collection is never blocked by modeling
// readiness.
func (ec *EntryController) retrain(userID string) {
	status, err := ec.predictor.Retrain(userID)
	if err != nil {
		ec.log.Error("model retrain failed", "user_id", userID, "error", err)
		return
	}
	if status != ml.StatusOK {
		ec.log.Info("model retrain skipped", "user_id", userID, "status", string(status))
	}
}
