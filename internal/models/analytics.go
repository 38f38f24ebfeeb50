package models

// Analytics is the combined summary served by GET /analytics.
// WeightChange is nil when fewer than two weights were ever logged.
type Analytics struct {
	WeightChange      *float64           `json:"weight_change"`
	AvgCalories       float64            `json:"avg_calories"`
	TDEETrend         []float64          `json:"tdee_trend"`
	FeatureImportance map[string]float64 `json:"feature_importance"`
}
