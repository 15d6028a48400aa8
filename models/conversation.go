package models

import "time"

// Conversation represents one (user message, assistant response) pair.
// Rows are append-only; ordering by CreatedAt defines the transcript.
type Conversation struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint64    `gorm:"index;not null" json:"user_id"`
	Message   string    `gorm:"not null" json:"message"`
	Response  string    `gorm:"not null" json:"response"`
	CreatedAt time.Time `json:"created_at"`
}
