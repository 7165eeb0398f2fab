package response_models

import (
	"luminous/internal/models/db_models"
)

type ProjectProgress struct {
	Completed int     `json:"completed"`
	Total     int     `json:"total"`
	Percent   float64 `json:"percent"`
}

type ParticipationStatus struct {
	Joined    bool `json:"joined"`
	Progress  int  `json:"progress"`
	Completed bool `json:"completed"`
}

type ProjectWithProgress struct {
	db_models.Project
	Progress ProjectProgress `json:"progress"`
}

type ProjectTasksResponse struct {
	Tasks    []db_models.Task `json:"tasks"`
	Progress ProjectProgress  `json:"progress"`
}

type HabitStats struct {
	HabitID        uint   `json:"habitId"`
	Name           string `json:"name"`
	CompletedToday bool   `json:"completedToday"`
	Streak         int    `json:"streak"`
	TotalEntries   int    `json:"totalEntries"`
}

type ChallengeStatusResponse struct {
	ChallengeID uint `json:"challengeId"`
	ParticipationStatus
}
