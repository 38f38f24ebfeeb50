package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"metabolicai/internal/models"
)

func completeEntries(n int) []models.Entry {
	entries := make([]models.Entry, n)
	for i := range entries {
		entries[i] = models.Entry{
			UserID:   "u1",
			Date:     fmt.Sprintf("2025-07-%02d", i+1),
			Weight:   fp(74.5),
			Calories: fp(2200),
		}
	}
	return entries
}

func setupPredictionRouter(mockEntry *MockEntryRepository, mockProfile *MockUserProfileRepository, mockPredictor *MockPredictor) *gin.Engine {
	controller := NewPredictionController(mockEntry, mockProfile, mockPredictor)
	router := setupTestRouter()
	router.Use(withUserID("u1"))
	router.GET("/tdee", controller.GetTDEE)
	return router
}

func TestGetTDEERejectsTwoCompleteEntries(t *testing.T) {
	mockEntry := new(MockEntryRepository)
	mockProfile := new(MockUserProfileRepository)
	mockPredictor := new(MockPredictor)

	mockProfile.On("FindByUserID", "u1").Return(&models.UserProfile{UserID: "u1", Age: 30, Gender: "male"}, nil)
	mockEntry.On("FindAllByUserID", "u1").Return(completeEntries(2), nil)

	router := setupPredictionRouter(mockEntry, mockProfile, mockPredictor)
	w := performJSON(t, router, "GET", "/tdee", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockPredictor.AssertNotCalled(t, "PredictTDEE", mock.Anything)
}

func TestGetTDEERejectsIncompleteEntries(t *testing.T) {
	mockEntry := new(MockEntryRepository)
	mockProfile := new(MockUserProfileRepository)
	mockPredictor := new(MockPredictor)

	// Six entries, but only two have both fields set.
	entries := completeEntries(2)
	for i := 2; i < 6; i++ {
		entries = append(entries, models.Entry{
			UserID: "u1",
			Date:   fmt.Sprintf("2025-07-%02d", i+1),
			Weight: fp(74.0),
		})
	}
	mockProfile.On("FindByUserID", "u1").Return(&models.UserProfile{UserID: "u1", Age: 30, Gender: "male"}, nil)
	mockEntry.On("FindAllByUserID", "u1").Return(entries, nil)

	router := setupPredictionRouter(mockEntry, mockProfile, mockPredictor)
	w := performJSON(t, router, "GET", "/tdee", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockPredictor.AssertNotCalled(t, "PredictTDEE", mock.Anything)
}

func TestGetTDEERejectsMissingProfile(t *testing.T) {
	mockEntry := new(MockEntryRepository)
	mockProfile := new(MockUserProfileRepository)
	mockPredictor := new(MockPredictor)

	mockProfile.On("FindByUserID", "u1").Return(nil, gorm.ErrRecordNotFound)
	mockEntry.On("FindAllByUserID", "u1").Return(completeEntries(5), nil)

	router := setupPredictionRouter(mockEntry, mockProfile, mockPredictor)
	w := performJSON(t, router, "GET", "/tdee", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetTDEEModelUnavailable(t *testing.T) {
	mockEntry := new(MockEntryRepository)
	mockProfile := new(MockUserProfileRepository)
	mockPredictor := new(MockPredictor)

	// Three complete entries pass the gate, but the trainer's 6-entry
	// minimum was never met, so no artifact exists.
	mockProfile.On("FindByUserID", "u1").Return(&models.UserProfile{UserID: "u1", Age: 30, Gender: "male"}, nil)
	mockEntry.On("FindAllByUserID", "u1").Return(completeEntries(3), nil)
	mockPredictor.On("PredictTDEE", "u1").Return(nil, nil)

	router := setupPredictionRouter(mockEntry, mockProfile, mockPredictor)
	w := performJSON(t, router, "GET", "/tdee", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Model not trained")
}

func TestGetTDEESuccess(t *testing.T) {
	mockEntry := new(MockEntryRepository)
	mockProfile := new(MockUserProfileRepository)
	mockPredictor := new(MockPredictor)

	mockProfile.On("FindByUserID", "u1").Return(&models.UserProfile{UserID: "u1", Age: 30, Gender: "male"}, nil)
	mockEntry.On("FindAllByUserID", "u1").Return(completeEntries(8), nil)
	mockPredictor.On("PredictTDEE", "u1").Return(fp(2245.67), nil)

	router := setupPredictionRouter(mockEntry, mockProfile, mockPredictor)
	w := performJSON(t, router, "GET", "/tdee", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var response map[string]float64
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 2245.67, response["tdee"])
}
