package db_models

import "time"

const (
	FrequencyDaily   = "daily"
	FrequencyWeekly  = "weekly"
	FrequencyMonthly = "monthly"
)

// Habit is never hard-deleted; IsActive=false hides it.
type Habit struct {
	BaseModel
	UserID          string  `gorm:"type:varchar(255);not null;index" json:"userId"`
	Name            string  `gorm:"type:varchar(255);not null" json:"name"`
	Description     *string `gorm:"type:text" json:"description"`
	Category        string  `gorm:"type:varchar(50);not null" json:"category"` // meditation, exercise, breathing, creative...
	TargetFrequency string  `gorm:"type:varchar(20);not null;default:daily" json:"targetFrequency"`
	IsActive        bool    `gorm:"not null" json:"isActive"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

// HabitEntry is one completion event. Entries are append-only and several
// per day are allowed.
type HabitEntry struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	HabitID     uint      `gorm:"not null;index" json:"habitId"`
	UserID      string    `gorm:"type:varchar(255);not null;index:idx_habit_entries_user_completed" json:"userId"`
	CompletedAt time.Time `gorm:"not null;index:idx_habit_entries_user_completed" json:"completedAt"`
	Notes       *string   `gorm:"type:text" json:"notes"`

	Habit *Habit `gorm:"foreignKey:HabitID" json:"-"`
	User  *User  `gorm:"foreignKey:UserID" json:"-"`
}
