package models

// UserProfile is the single demographic row kept per user. Upserts
// replace every field; partial updates are merged in the controller
// before the write.
type UserProfile struct {
	UserID        string   `gorm:"primaryKey" json:"user_id" binding:"required" example:"u1"`
	Age           int      `json:"age" binding:"required" example:"30"`
	Gender        string   `json:"gender" binding:"required" example:"male"`
	HeightCm      *float64 `json:"height_cm" example:"180"`
	BodyFatPct    *float64 `json:"body_fat_pct" example:"15.5"`
	CurrentWeight *float64 `json:"current_weight" example:"75"`
}

func (UserProfile) TableName() string {
	return "users"
}

// UserProfilePatch carries a sparse profile update. Nil fields keep
// their stored value.
type UserProfilePatch struct {
	UserID        string   `json:"user_id" binding:"required"`
	Age           *int     `json:"age"`
	Gender        *string  `json:"gender"`
	HeightCm      *float64 `json:"height_cm"`
	BodyFatPct    *float64 `json:"body_fat_pct"`
	CurrentWeight *float64 `json:"current_weight"`
}
