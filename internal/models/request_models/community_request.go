package request_models

import "time"

type CreateCommunityPostRequest struct {
	Title    string `json:"title" binding:"required,max=255"`
	Content  string `json:"content" binding:"required"`
	Category string `json:"category" binding:"required,max=50"`
}

type CreateChallengeRequest struct {
	Title       string    `json:"title" binding:"required,max=255"`
	Description string    `json:"description" binding:"required"`
	Category    string    `json:"category" binding:"required,max=50"`
	StartDate   time.Time `json:"startDate" binding:"required"`
	EndDate     time.Time `json:"endDate" binding:"required,gtefield=StartDate"`
	IsActive    *bool     `json:"isActive"`
}

// UpdateChallengeProgressRequest: progress is a 0-100 percentage. When
// Completed is omitted it follows progress == 100.
type UpdateChallengeProgressRequest struct {
	Progress  *int  `json:"progress" binding:"required,gte=0,lte=100"`
	Completed *bool `json:"completed"`
}
