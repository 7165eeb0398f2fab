package db_models

import "time"

// LikesCount is display-only; nothing increments it yet.
type CommunityPost struct {
	BaseModel
	UserID     string `gorm:"type:varchar(255);not null;index" json:"userId"`
	Title      string `gorm:"type:varchar(255);not null" json:"title"`
	Content    string `gorm:"type:text;not null" json:"content"`
	Category   string `gorm:"type:varchar(50);not null" json:"category"`
	LikesCount int    `gorm:"not null;default:0" json:"likesCount"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

// Challenge is global, not user owned.
type Challenge struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Category    string    `gorm:"type:varchar(50);not null" json:"category"`
	StartDate   time.Time `gorm:"not null" json:"startDate"`
	EndDate     time.Time `gorm:"not null" json:"endDate"`
	IsActive    bool      `gorm:"not null" json:"isActive"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// ChallengeParticipation is unique per (user, challenge).
type ChallengeParticipation struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ChallengeID uint      `gorm:"not null;uniqueIndex:idx_participation_user_challenge" json:"challengeId"`
	UserID      string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_participation_user_challenge" json:"userId"`
	Completed   bool      `gorm:"not null;default:false" json:"completed"`
	Progress    int       `gorm:"not null;default:0" json:"progress"`
	JoinedAt    time.Time `gorm:"autoCreateTime" json:"joinedAt"`

	Challenge *Challenge `gorm:"foreignKey:ChallengeID" json:"-"`
	User      *User      `gorm:"foreignKey:UserID" json:"-"`
}
