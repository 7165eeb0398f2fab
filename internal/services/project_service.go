package services

import (
	"context"

	"luminous/internal/models/db_models"
	"luminous/internal/models/request_models"
	"luminous/internal/models/response_models"
	"luminous/internal/progress"
	"luminous/internal/repositories"
	"luminous/pkg/utils"
)

type ProjectServiceInterface interface {
	GetUserProjects(ctx context.Context, userID string) ([]response_models.ProjectWithProgress, error)
	GetProject(ctx context.Context, userID string, id uint) (*db_models.Project, error)
	GetProjectTasks(ctx context.Context, userID string, id uint) (*response_models.ProjectTasksResponse, error)
	CreateProject(ctx context.Context, userID string, req request_models.CreateProjectRequest) (*db_models.Project, error)
	UpdateProject(ctx context.Context, userID string, id uint, req request_models.UpdateProjectRequest) (*db_models.Project, error)
	DeleteProject(ctx context.Context, userID string, id uint) error
}

type ProjectService struct {
	projectRepo repositories.ProjectRepository
	taskRepo    repositories.TaskRepository
}

func NewProjectService(projectRepo repositories.ProjectRepository, taskRepo repositories.TaskRepository) ProjectServiceInterface {
	return &ProjectService{
		projectRepo: projectRepo,
		taskRepo:    taskRepo,
	}
}

func (p *ProjectService) GetUserProjects(ctx context.Context, userID string) ([]response_models.ProjectWithProgress, error) {
	projects, err := p.projectRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, utils.DatabaseError(err)
	}
	tasks, err := p.taskRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, utils.DatabaseError(err)
	}

	byProject := make(map[uint][]db_models.Task, len(projects))
	for _, t := range tasks {
		byProject[t.ProjectID] = append(byProject[t.ProjectID], t)
	}

	result := make([]response_models.ProjectWithProgress, 0, len(projects))
	for _, project := range projects {
		result = append(result, response_models.ProjectWithProgress{
			Project:  project,
			Progress: progress.ForProject(byProject[project.ID]),
		})
	}
	return result, nil
}

func (p *ProjectService) GetProject(ctx context.Context, userID string, id uint) (*db_models.Project, error) {
	project, err := p.projectRepo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, utils.DatabaseError(err)
	}
	if project == nil {
		return nil, utils.ErrProjectNotFound
	}
	return project, nil
}

func (p *ProjectService) GetProjectTasks(ctx context.Context, userID string, id uint) (*response_models.ProjectTasksResponse, error) {
	if _, err := p.GetProject(ctx, userID, id); err != nil {
		return nil, err
	}

	tasks, err := p.taskRepo.FindByProject(ctx, userID, id)
	if err != nil {
		return nil, utils.DatabaseError(err)
	}
	if tasks == nil {
		tasks = []db_models.Task{}
	}
	return &response_models.ProjectTasksResponse{
		Tasks:    tasks,
		Progress: progress.ForProject(tasks),
	}, nil
}

func (p *ProjectService) CreateProject(ctx context.Context, userID string, req request_models.CreateProjectRequest) (*db_models.Project, error) {
	project := &db_models.Project{
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
	}
	if project.Status == "" {
		project.Status = db_models.ProjectStatusActive
	}

	if err := p.projectRepo.Create(ctx, project); err != nil {
		return nil, utils.DatabaseError(err)
	}
	return project, nil
}

func (p *ProjectService) UpdateProject(ctx context.Context, userID string, id uint, req request_models.UpdateProjectRequest) (*db_models.Project, error) {
	project, err := p.projectRepo.Update(ctx, userID, id, req.Changes())
	if err != nil {
		return nil, utils.DatabaseError(err)
	}
	if project == nil {
		return nil, utils.ErrProjectNotFound
	}
	return project, nil
}

// DeleteProject hard-deletes the project together with its tasks.
func (p *ProjectService) DeleteProject(ctx context.Context, userID string, id uint) error {
	deleted, err := p.projectRepo.Delete(ctx, userID, id)
	if err != nil {
		return utils.DatabaseError(err)
	}
	if !deleted {
		return utils.ErrProjectNotFound
	}
	return nil
}
