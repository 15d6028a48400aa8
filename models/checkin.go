package models

import "time"

// StressCheckin represents one daily stress check-in submission.
// Ratings are 1-10; the range is enforced by the logic layer, not the schema.
// There is no uniqueness on (user_id, date): several check-ins on the same
// day all persist.
type StressCheckin struct {
	ID             uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID         uint64    `gorm:"index;not null" json:"user_id"`
	Date           time.Time `gorm:"type:date;not null" json:"date"`
	MorningStress  int       `json:"morning_stress"`
	EveningStress  int       `json:"evening_stress"`
	WorkloadRating int       `json:"workload_rating"`
	EnergyLevel    int       `json:"energy_level"`
	Notes          string    `json:"notes"`
	CreatedAt      time.Time `json:"created_at"`
}
