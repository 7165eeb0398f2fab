package response_models

import "luminous/internal/models/db_models"

type UserStats struct {
	Projects int `json:"projects"`
	Habits   int `json:"habits"`
	Posts    int `json:"posts"`
}

type RecentActivity struct {
	Projects []db_models.Project       `json:"projects"`
	Habits   []db_models.Habit         `json:"habits"`
	Posts    []db_models.CommunityPost `json:"posts"`
}

type UserProfileResponse struct {
	User           db_models.User `json:"user"`
	Stats          UserStats      `json:"stats"`
	RecentActivity RecentActivity `json:"recentActivity"`
}
