package models

// Entry is one day of logged measurements. The (user_id, date) pair is
// the identity; conflicting writes coalesce field by field so a
// weight-only write never erases previously logged calories.
type Entry struct {
	UserID   string   `gorm:"primaryKey" json:"-"`
	Date     string   `gorm:"primaryKey" json:"date" binding:"required,datetime=2006-01-02" example:"2025-07-13"`
	Weight   *float64 `json:"weight" example:"74.5"`
	Calories *float64 `json:"calories" example:"2200"`
}

func (Entry) TableName() string {
	return "entries"
}

// EntryPatch carries a sparse update for an existing entry. Nil fields
// keep their stored value.
type EntryPatch struct {
	Date     string   `json:"date" binding:"required,datetime=2006-01-02"`
	Weight   *float64 `json:"weight"`
	Calories *float64 `json:"calories"`
}
