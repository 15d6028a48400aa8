package models

import (
	"time"
)

// User represents a person identified by a unique display name.
// Created on first login, never mutated afterwards.
type User struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Username  string    `gorm:"uniqueIndex;not null" json:"username"`
	CreatedAt time.Time `json:"created_at"`
}
