package db_models

const (
	ProjectStatusActive    = "active"
	ProjectStatusCompleted = "completed"
	ProjectStatusArchived  = "archived"

	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

type Project struct {
	BaseModel
	UserID      string  `gorm:"type:varchar(255);not null;index" json:"userId"`
	Name        string  `gorm:"type:varchar(255);not null" json:"name"`
	Description *string `gorm:"type:text" json:"description"`
	// Status is an open set; the constants above are the known values.
	Status string `gorm:"type:varchar(50);not null;default:active" json:"status"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

// Task.UserID is denormalized from its project and must match it.
type Task struct {
	BaseModel
	ProjectID   uint    `gorm:"not null;index" json:"projectId"`
	UserID      string  `gorm:"type:varchar(255);not null;index" json:"userId"`
	Title       string  `gorm:"type:varchar(255);not null" json:"title"`
	Description *string `gorm:"type:text" json:"description"`
	Completed   bool    `gorm:"not null;default:false" json:"completed"`
	Priority    string  `gorm:"type:varchar(20);not null;default:medium" json:"priority"`

	Project *Project `gorm:"foreignKey:ProjectID" json:"-"`
	User    *User    `gorm:"foreignKey:UserID" json:"-"`
}
