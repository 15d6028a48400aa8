package dao

import (
	"time"

	"gorm.io/gorm"

	"github.com/WorkZen2025/workzen-app/models"
)

// DefaultCheckinLimit bounds check-in history reads.
const DefaultCheckinLimit = 30

// CheckinDAO handles stress check-in database operations
type CheckinDAO struct {
	db *gorm.DB
}

func NewCheckinDAO(db *gorm.DB) *CheckinDAO {
	return &CheckinDAO{db: db}
}

// SaveCheckin inserts a check-in row. Callers must range-check the ratings
// before calling; the DAO persists whatever it is given.
func (d *CheckinDAO) SaveCheckin(userID uint64, date time.Time, morning, evening, workload, energy int, notes string) (*models.StressCheckin, error) {
	checkin := &models.StressCheckin{
		UserID:         userID,
		Date:           date,
		MorningStress:  morning,
		EveningStress:  evening,
		WorkloadRating: workload,
		EnergyLevel:    energy,
		Notes:          notes,
	}
	if err := d.db.Create(checkin).Error; err != nil {
		return nil, err
	}
	return checkin, nil
}

// GetRecentCheckins retrieves up to limit check-ins, most recent first.
// A non-positive or oversized limit falls back to DefaultCheckinLimit.
func (d *CheckinDAO) GetRecentCheckins(userID uint64, limit int) ([]models.StressCheckin, error) {
	if limit < 1 || limit > DefaultCheckinLimit {
		limit = DefaultCheckinLimit
	}
	var checkins []models.StressCheckin
	err := d.db.Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Limit(limit).
		Find(&checkins).Error
	if err != nil {
		return nil, err
	}
	return checkins, nil
}
