package dao

import (
	"time"

	"gorm.io/gorm"

	"github.com/WorkZen2025/workzen-app/models"
)

// PrayerDAO handles prayer request database operations
type PrayerDAO struct {
	db *gorm.DB
}

func NewPrayerDAO(db *gorm.DB) *PrayerDAO {
	return &PrayerDAO{db: db}
}

// SavePrayerRequest inserts an unanswered prayer request
func (d *PrayerDAO) SavePrayerRequest(userID uint64, text, category string) (*models.PrayerRequest, error) {
	prayer := &models.PrayerRequest{
		UserID:      userID,
		RequestText: text,
		Category:    category,
	}
	if err := d.db.Create(prayer).Error; err != nil {
		return nil, err
	}
	return prayer, nil
}

// ListPrayerRequests retrieves all of a user's prayer requests, most recent first
func (d *PrayerDAO) ListPrayerRequests(userID uint64) ([]models.PrayerRequest, error) {
	var prayers []models.PrayerRequest
	err := d.db.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&prayers).Error
	if err != nil {
		return nil, err
	}
	return prayers, nil
}

// GetPrayerRequest retrieves a prayer request by primary key
func (d *PrayerDAO) GetPrayerRequest(id uint64) (*models.PrayerRequest, error) {
	var prayer models.PrayerRequest
	if err := d.db.First(&prayer, id).Error; err != nil {
		return nil, err
	}
	return &prayer, nil
}

// MarkPrayerAnswered sets the answered flag, testimony text and answered
// timestamp. A missing id surfaces gorm.ErrRecordNotFound rather than
// silently updating zero rows.
func (d *PrayerDAO) MarkPrayerAnswered(id uint64, answeredText string) (*models.PrayerRequest, error) {
	now := time.Now()
	res := d.db.Model(&models.PrayerRequest{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_answered":   true,
			"answered_text": answeredText,
			"answered_at":   now,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return d.GetPrayerRequest(id)
}
