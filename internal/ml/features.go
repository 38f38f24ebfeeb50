package ml

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"metabolicai/internal/models"
)

// FeatureNames lists the model input columns in training order.
var FeatureNames = []string{
	"weight", "calories",
	"weight_lag1", "calories_lag1",
	"weight_ma3", "calories_ma3",
	"age", "gender", "height_cm", "body_fat_pct", "current_weight",
}

const caloriesColumn = 1

// FeatureMatrix holds one row per entry, in date order. NaN marks a
// missing value until ModelInput zero-fills it.
type FeatureMatrix [][]float64

// BuildFeatures derives the per-entry feature rows from a user's log
// and profile. Deterministic: stable sort by date, lag-1 and trailing
// 3-day means on weight and calories, column-mean fill for the derived
// columns, profile covariates broadcast onto every row.
func BuildFeatures(entries []models.Entry, profile *models.UserProfile) FeatureMatrix {
	sorted := make([]models.Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date < sorted[j].Date })

	n := len(sorted)
	weight := make([]float64, n)
	calories := make([]float64, n)
	for i, e := range sorted {
		weight[i] = optional(e.Weight)
		calories[i] = optional(e.Calories)
	}

	weightLag := lag1(weight)
	caloriesLag := lag1(calories)
	weightMA := rollingMean3(weight)
	caloriesMA := rollingMean3(calories)
	for _, col := range [][]float64{weightLag, caloriesLag, weightMA, caloriesMA} {
		fillWithColumnMean(col)
	}

	gender := 0.0
	if profile.Gender == "male" {
		gender = 1
	}
	age := float64(profile.Age)
	height := optional(profile.HeightCm)
	bodyFat := optional(profile.BodyFatPct)
	currentWeight := optional(profile.CurrentWeight)

	matrix := make(FeatureMatrix, n)
	for i := 0; i < n; i++ {
		matrix[i] = []float64{
			weight[i], calories[i],
			weightLag[i], caloriesLag[i],
			weightMA[i], caloriesMA[i],
			age, gender, height, bodyFat, currentWeight,
		}
	}
	return matrix
}

// ModelInput returns the zero-filled view the models are fit and
// scored on. Every remaining NaN becomes 0.
func (m FeatureMatrix) ModelInput() [][]float64 {
	out := make([][]float64, len(m))
	for i, row := range m {
		r := make([]float64, len(row))
		for j, v := range row {
			if math.IsNaN(v) {
				v = 0
			}
			r[j] = v
		}
		out[i] = r
	}
	return out
}

// Target extracts the calories column of the model input view.
func Target(input [][]float64) []float64 {
	y := make([]float64, len(input))
	for i, row := range input {
		y[i] = row[caloriesColumn]
	}
	return y
}

func optional(v *float64) float64 {
	if v == nil {
		return math.NaN()
	}
	return *v
}

func lag1(col []float64) []float64 {
	out := make([]float64, len(col))
	for i := range out {
		if i == 0 {
			out[i] = math.NaN()
		} else {
			out[i] = col[i-1]
		}
	}
	return out
}

func rollingMean3(col []float64) []float64 {
	out := make([]float64, len(col))
	for i := range col {
		lo := i - 2
		if lo < 0 {
			lo = 0
		}
		out[i] = nanMean(col[lo : i+1])
	}
	return out
}

// nanMean averages the non-NaN values; an all-NaN slice stays NaN.
func nanMean(vals []float64) float64 {
	kept := make([]float64, 0, len(vals))
	for _, v := range vals {
		if !math.IsNaN(v) {
			kept = append(kept, v)
		}
	}
	if len(kept) == 0 {
		return math.NaN()
	}
	return stat.Mean(kept, nil)
}

func fillWithColumnMean(col []float64) {
	mean := nanMean(col)
	for i, v := range col {
		if math.IsNaN(v) {
			col[i] = mean
		}
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
