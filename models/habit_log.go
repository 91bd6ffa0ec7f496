package models

import (
	"time"

	"gorm.io/gorm"
)

// HabitLog is one logged green action. Date is the authoritative column for
// all day bucketing; CreatedAt is bookkeeping only.
type HabitLog struct {
	gorm.Model
	UserID      uint      `gorm:"index;not null" json:"user_id"`
	HabitType   string    `gorm:"size:16" json:"habit_type"` // "preset" | "custom"
	HabitName   string    `gorm:"not null" json:"habit_name"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `gorm:"index;not null" json:"date"` // stored in UTC
	PhotoURL    string    `json:"photo_url,omitempty"`
}

type PresetHabit struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
