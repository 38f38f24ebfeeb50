package repository

import (
	"metabolicai/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EntryRepository interface {
	Upsert(entry *models.Entry) error
	FindByUserIDAndDate(userID, date string) (*models.Entry, error)
	FindAllByUserID(userID string) ([]models.Entry, error)
}

type entryRepository struct {
	db *gorm.DB
}

func NewEntryRepository(db *gorm.DB) EntryRepository {
	return &entryRepository{db: db}
}

// Upsert inserts the entry, or on a (user_id, date) conflict updates
// each measured field only when the incoming value is non-null. A
// caller can never erase a recorded value by omitting it.
func (r *entryRepository) Upsert(entry *models.Entry) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"weight":   gorm.Expr("COALESCE(excluded.weight, weight)"),
			"calories": gorm.Expr("COALESCE(excluded.calories, calories)"),
		}),
	}).Create(entry).Error
}

func (r *entryRepository) FindByUserIDAndDate(userID, date string) (*models.Entry, error) {
	var entry models.Entry
	err := r.db.Where("user_id = ? AND date = ?", userID, date).First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// FindAllByUserID returns the user's full log ordered by date
// ascending. An empty slice is a valid result.
func (r *entryRepository) FindAllByUserID(userID string) ([]models.Entry, error) {
	var entries []models.Entry
	err := r.db.Where("user_id = ?", userID).Order("date ASC").Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
