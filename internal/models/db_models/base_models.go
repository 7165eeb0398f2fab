package db_models

import (
	"time"
)

// BaseModel is shared by the user-owned, mutable entities. Timestamps come
// from gorm's NowFunc, which is wired to the application clock.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// All lists every table in migration order.
func All() []interface{} {
	return []interface{}{
		&Session{},
		&User{},
		&Project{},
		&Task{},
		&Habit{},
		&HabitEntry{},
		&CommunityPost{},
		&Challenge{},
		&ChallengeParticipation{},
	}
}
