package ml

import (
	"errors"

	"gorm.io/gorm"

	"metabolicai/internal/logger"
	"metabolicai/internal/models"
	"metabolicai/internal/repository"
)

type TrainStatus string

const (
	StatusOK            TrainStatus = "ok"
	StatusNotEnoughData TrainStatus = "not_enough_data"
)

const (
	minTrainEntries   = 6
	boostedMinEntries = 8
)

// Predictor trains, persists and scores the per-user TDEE model.
// Every call re-derives the feature matrix from current stored data;
// nothing is updated incrementally.
type Predictor interface {
	Retrain(userID string) (TrainStatus, error)
	PredictTDEE(userID string) (*float64, error)
	Trend(userID string, window int) ([]float64, error)
	FeatureImportance(userID string) (map[string]float64, error)
}

type predictor struct {
	entries  repository.EntryRepository
	profiles repository.UserProfileRepository
	store    *ModelStore
	log      *logger.Logger
}

func NewPredictor(entries repository.EntryRepository, profiles repository.UserProfileRepository, store *ModelStore, log *logger.Logger) Predictor {
	return &predictor{entries: entries, profiles: profiles, store: store, log: log}
}

// Retrain refits the user's model from scratch and replaces the
// persisted artifact. Fewer than 6 entries or a missing profile yields
// StatusNotEnoughData and leaves any prior artifact untouched. With 8
// or more entries a boosted tree ensemble is fit, otherwise ordinary
// least squares.
func (p *predictor) Retrain(userID string) (TrainStatus, error) {
	entries, profile, err := p.loadUserData(userID)
	if err != nil {
		return "", err
	}
	if len(entries) < minTrainEntries || profile == nil {
		return StatusNotEnoughData, nil
	}

	input := BuildFeatures(entries, profile).ModelInput()
	y := Target(input)

	var artifact *Artifact
	if len(entries) >= boostedMinEntries {
		artifact = &Artifact{Family: FamilyBoosted, Boosted: fitBoosted(input, y)}
	} else {
		intercept, coefs, err := fitLinear(input, y)
		if err != nil {
			return "", err
		}
		artifact = &Artifact{Family: FamilyLinear, Intercept: intercept, Coefs: coefs}
	}

	if err := p.store.Save(userID, artifact); err != nil {
		return "", err
	}
	p.log.Info("model retrained",
		"user_id", userID,
		"family", artifact.Family,
		"entries", len(entries),
	)
	return StatusOK, nil
}

// PredictTDEE scores the most recent feature row. Nil means no
// persisted model, no entries or no profile.
func (p *predictor) PredictTDEE(userID string) (*float64, error) {
	artifact, input, err := p.loadScoringInput(userID)
	if err != nil || artifact == nil || len(input) == 0 {
		return nil, err
	}
	tdee := round2(artifact.predictRow(input[len(input)-1]))
	return &tdee, nil
}

// Trend predicts on every feature row and returns the last `window`
// predictions, oldest first. Empty when no model or data.
func (p *predictor) Trend(userID string, window int) ([]float64, error) {
	artifact, input, err := p.loadScoringInput(userID)
	if err != nil {
		return nil, err
	}
	if artifact == nil || len(input) == 0 {
		return []float64{}, nil
	}

	preds := make([]float64, len(input))
	for i, row := range input {
		preds[i] = round2(artifact.predictRow(row))
	}
	if window < len(preds) {
		preds = preds[len(preds)-window:]
	}
	return preds, nil
}

// FeatureImportance never errors on absence: an untrained user gets an
// empty mapping.
func (p *predictor) FeatureImportance(userID string) (map[string]float64, error) {
	artifact, err := p.store.Load(userID)
	if err != nil {
		return nil, err
	}
	if artifact == nil {
		return map[string]float64{}, nil
	}
	return artifact.importance(), nil
}

func (p *predictor) loadUserData(userID string) ([]models.Entry, *models.UserProfile, error) {
	entries, err := p.entries.FindAllByUserID(userID)
	if err != nil {
		return nil, nil, err
	}
	profile, err := p.profiles.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entries, nil, nil
		}
		return nil, nil, err
	}
	return entries, profile, nil
}

func (p *predictor) loadScoringInput(userID string) (*Artifact, [][]float64, error) {
	artifact, err := p.store.Load(userID)
	if err != nil {
		return nil, nil, err
	}
	if artifact == nil {
		return nil, nil, nil
	}
	entries, profile, err := p.loadUserData(userID)
	if err != nil {
		return nil, nil, err
	}
	if len(entries) == 0 || profile == nil {
		return nil, nil, nil
	}
	return artifact, BuildFeatures(entries, profile).ModelInput(), nil
}
