package controllers

import (
	"github.com/stretchr/testify/mock"

	"metabolicai/internal/ml"
	"metabolicai/internal/models"
)

type MockUserProfileRepository struct {
	mock.Mock
}

func (m *MockUserProfileRepository) Upsert(profile *models.UserProfile) error {
	args := m.Called(profile)
	return args.Error(0)
}

func (m *MockUserProfileRepository) FindByUserID(userID string) (*models.UserProfile, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

type MockEntryRepository struct {
	mock.Mock
}

func (m *MockEntryRepository) Upsert(entry *models.Entry) error {
	args := m.Called(entry)
	return args.Error(0)
}

func (m *MockEntryRepository) FindByUserIDAndDate(userID, date string) (*models.Entry, error) {
	args := m.Called(userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Entry), args.Error(1)
}

func (m *MockEntryRepository) FindAllByUserID(userID string) ([]models.Entry, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Entry), args.Error(1)
}

type MockPredictor struct {
	mock.Mock
}

func (m *MockPredictor) Retrain(userID string) (ml.TrainStatus, error) {
	args := m.Called(userID)
	return args.Get(0).(ml.TrainStatus), args.Error(1)
}

func (m *MockPredictor) PredictTDEE(userID string) (*float64, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*float64), args.Error(1)
}

func (m *MockPredictor) Trend(userID string, window int) ([]float64, error) {
	args := m.Called(userID, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]float64), args.Error(1)
}

func (m *MockPredictor) FeatureImportance(userID string) (map[string]float64, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]float64), args.Error(1)
}
