package ml

import (
	"encoding/json"
	"errors"
	"math"
	"os"
	"path/filepath"
)

const (
	FamilyLinear  = "linear"
	FamilyBoosted = "gbt"
)

// Artifact is the serialized per-user model. Retraining fully replaces
// it; there is no versioning or history.
type Artifact struct {
	Family    string        `json:"family"`
	Intercept float64       `json:"intercept,omitempty"`
	Coefs     []float64     `json:"coefs,omitempty"`
	Boosted   *boostedModel `json:"boosted,omitempty"`
}

func (a *Artifact) predictRow(row []float64) float64 {
	if a.Family == FamilyBoosted {
		return a.Boosted.predict(row)
	}
	return predictLinear(a.Intercept, a.Coefs, row)
}

// importance maps feature names to non-negative weights: normalized
// split gains for the tree ensemble, absolute coefficients for the
// linear model.
func (a *Artifact) importance() map[string]float64 {
	out := make(map[string]float64, len(FeatureNames))
	switch a.Family {
	case FamilyBoosted:
		total := 0.0
		for _, g := range a.Boosted.Gains {
			total += g
		}
		for j, name := range FeatureNames {
			share := 0.0
			if total > 0 {
				share = a.Boosted.Gains[j] / total
			}
			out[name] = round3(share)
		}
	case FamilyLinear:
		for j, name := range FeatureNames {
			out[name] = round3(math.Abs(a.Coefs[j]))
		}
	}
	return out
}

// ModelStore persists one artifact file per user on the local
// filesystem, namespaced by user id.
type ModelStore struct {
	dir string
}

func NewModelStore(dir string) *ModelStore {
	if dir == "" {
		dir = "models"
	}
	return &ModelStore{dir: dir}
}

func (s *ModelStore) path(userID string) string {
	return filepath.Join(s.dir, userID+"_model.json")
}

func (s *ModelStore) Save(userID string, artifact *Artifact) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	data, err := json.Marshal(artifact)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(userID), data, 0o644)
}

// Load returns (nil, nil) when the user has no persisted model.
func (s *ModelStore) Load(userID string) (*Artifact, error) {
	data, err := os.ReadFile(s.path(userID))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var artifact Artifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, err
	}
	return &artifact, nil
}
