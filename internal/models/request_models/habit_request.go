package request_models

import "time"

type CreateHabitRequest struct {
	Name            string  `json:"name" binding:"required,max=255"`
	Description     *string `json:"description"`
	Category        string  `json:"category" binding:"required,max=50"`
	TargetFrequency string  `json:"targetFrequency" binding:"omitempty,oneof=daily weekly monthly"`
}

type UpdateHabitRequest struct {
	Name            *string `json:"name" binding:"omitempty,min=1,max=255"`
	Description     *string `json:"description"`
	Category        *string `json:"category" binding:"omitempty,min=1,max=50"`
	TargetFrequency *string `json:"targetFrequency" binding:"omitempty,oneof=daily weekly monthly"`
}

func (r UpdateHabitRequest) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if r.Name != nil {
		changes["name"] = *r.Name
	}
	if r.Description != nil {
		changes["description"] = *r.Description
	}
	if r.Category != nil {
		changes["category"] = *r.Category
	}
	if r.TargetFrequency != nil {
		changes["target_frequency"] = *r.TargetFrequency
	}
	return changes
}

// CreateHabitEntryRequest records a completion. CompletedAt defaults to now.
type CreateHabitEntryRequest struct {
	HabitID     uint       `json:"habitId" binding:"required"`
	CompletedAt *time.Time `json:"completedAt"`
	Notes       *string    `json:"notes" binding:"omitempty,max=2000"`
}
