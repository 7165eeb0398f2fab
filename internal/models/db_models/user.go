package db_models

import (
	"time"

	"gorm.io/datatypes"
)

// User rows are keyed by the identity provider's subject id.
type User struct {
	ID              string    `gorm:"primaryKey;type:varchar(255)" json:"id"`
	Email           *string   `gorm:"type:varchar(255);uniqueIndex" json:"email"`
	FirstName       *string   `gorm:"type:varchar(255)" json:"firstName"`
	LastName        *string   `gorm:"type:varchar(255)" json:"lastName"`
	ProfileImageURL *string   `gorm:"column:profile_image_url;type:varchar(1024)" json:"profileImageUrl"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// Session backs cookie authentication. Sess holds the identity claims the
// session was opened with.
type Session struct {
	SID    string         `gorm:"column:sid;primaryKey;type:varchar(255)"`
	Sess   datatypes.JSON `gorm:"not null"`
	Expire time.Time      `gorm:"not null;index:IDX_session_expire"`
}

func (Session) TableName() string {
	return "sessions"
}
