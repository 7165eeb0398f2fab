package request_models

type CreateProjectRequest struct {
	Name        string  `json:"name" binding:"required,max=255"`
	Description *string `json:"description"`
	Status      string  `json:"status" binding:"omitempty,max=50"`
}

// UpdateProjectRequest is a partial patch: nil fields are left untouched.
type UpdateProjectRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=255"`
	Description *string `json:"description"`
	Status      *string `json:"status" binding:"omitempty,min=1,max=50"`
}

func (r UpdateProjectRequest) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if r.Name != nil {
		changes["name"] = *r.Name
	}
	if r.Description != nil {
		changes["description"] = *r.Description
	}
	if r.Status != nil {
		changes["status"] = *r.Status
	}
	return changes
}

type CreateTaskRequest struct {
	ProjectID   uint    `json:"projectId" binding:"required"`
	Title       string  `json:"title" binding:"required,max=255"`
	Description *string `json:"description"`
	Completed   bool    `json:"completed"`
	Priority    string  `json:"priority" binding:"omitempty,oneof=low medium high"`
}

type UpdateTaskRequest struct {
	ProjectID   *uint   `json:"projectId" binding:"omitempty,min=1"`
	Title       *string `json:"title" binding:"omitempty,min=1,max=255"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=low medium high"`
}

func (r UpdateTaskRequest) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if r.ProjectID != nil {
		changes["project_id"] = *r.ProjectID
	}
	if r.Title != nil {
		changes["title"] = *r.Title
	}
	if r.Description != nil {
		changes["description"] = *r.Description
	}
	if r.Completed != nil {
		changes["completed"] = *r.Completed
	}
	if r.Priority != nil {
		changes["priority"] = *r.Priority
	}
	return changes
}
