package models

import "time"

// Prayer request categories.
const (
	CategoryWork          = "work"
	CategoryRelationships = "relationships"
	CategoryHealth        = "health"
	CategoryFinances      = "finances"
	CategoryFamily        = "family"
	CategoryOther         = "other"
)

// PrayerCategories lists the accepted categories in display order.
var PrayerCategories = []string{
	CategoryWork,
	CategoryRelationships,
	CategoryHealth,
	CategoryFinances,
	CategoryFamily,
	CategoryOther,
}

// PrayerRequest represents a prayer request. It is created unanswered and
// transitions exactly once to answered; AnsweredAt is non-nil iff IsAnswered.
type PrayerRequest struct {
	ID           uint64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       uint64     `gorm:"index;not null" json:"user_id"`
	RequestText  string     `gorm:"not null" json:"request_text"`
	Category     string     `gorm:"type:varchar(50);not null" json:"category"`
	IsAnswered   bool       `gorm:"default:false" json:"is_answered"`
	AnsweredText string     `json:"answered_text"`
	CreatedAt    time.Time  `json:"created_at"`
	AnsweredAt   *time.Time `json:"answered_at"`
}
