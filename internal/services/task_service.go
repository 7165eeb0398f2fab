package services

import (
	"context"

	"luminous/internal/models/db_models"
	"luminous/internal/models/request_models"
	"luminous/internal/repositories"
	"luminous/pkg/utils"
)

type TaskServiceInterface interface {
	GetUserTasks(ctx context.Context, userID string) ([]db_models.Task, error)
	GetTask(ctx context.Context, userID string, id uint) (*db_models.Task, error)
	CreateTask(ctx context.Context, userID string, req request_models.CreateTaskRequest) (*db_models.Task, error)
	UpdateTask(ctx context.Context, userID string, id uint, req request_models.UpdateTaskRequest) (*db_models.Task, error)
	DeleteTask(ctx context.Context, userID string, id uint) error
}

type TaskService struct {
	taskRepo    repositories.TaskRepository
	projectRepo repositories.ProjectRepository
}

func NewTaskService(taskRepo repositories.TaskRepository, projectRepo repositories.ProjectRepository) TaskServiceInterface {
	return &TaskService{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
	}
}

func (t *TaskService) GetUserTasks(ctx context.Context, userID string) ([]db_models.Task, error) {
	tasks, err := t.taskRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, utils.DatabaseError(err)
	}
	return tasks, nil
}

func (t *TaskService) GetTask(ctx context.Context, userID string, id uint) (*db_models.Task, error) {
	task, err := t.taskRepo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, utils.DatabaseError(err)
	}
	if task == nil {
		return nil, utils.ErrTaskNotFound
	}
	return task, nil
}

// CreateTask requires the project to exist and belong to the caller, which
// keeps task.UserID equal to its project's UserID.
func (t *TaskService) CreateTask(ctx context.Context, userID string, req request_models.CreateTaskRequest) (*db_models.Task, error) {
	if err := t.requireOwnedProject(ctx, userID, req.ProjectID); err != nil {
		return nil, err
	}

	task := &db_models.Task{
		ProjectID:   req.ProjectID,
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
		Priority:    req.Priority,
	}
	if task.Priority == "" {
		task.Priority = db_models.PriorityMedium
	}

	if err := t.taskRepo.Create(ctx, task); err != nil {
		return nil, utils.DatabaseError(err)
	}
	return task, nil
}

func (t *TaskService) UpdateTask(ctx context.Context, userID string, id uint, req request_models.UpdateTaskRequest) (*db_models.Task, error) {
	if req.ProjectID != nil {
		if _, err := t.GetTask(ctx, userID, id); err != nil {
			return nil, err
		}
		if err := t.requireOwnedProject(ctx, userID, *req.ProjectID); err != nil {
			return nil, err
		}
	}

	task, err := t.taskRepo.Update(ctx, userID, id, req.Changes())
	if err != nil {
		return nil, utils.DatabaseError(err)
	}
	if task == nil {
		return nil, utils.ErrTaskNotFound
	}
	return task, nil
}

func (t *TaskService) DeleteTask(ctx context.Context, userID string, id uint) error {
	deleted, err := t.taskRepo.Delete(ctx, userID, id)
	if err != nil {
		return utils.DatabaseError(err)
	}
	if !deleted {
		return utils.ErrTaskNotFound
	}
	return nil
}

func (t *TaskService) requireOwnedProject(ctx context.Context, userID string, projectID uint) error {
	project, err := t.projectRepo.FindByID(ctx, userID, projectID)
	if err != nil {
		return utils.DatabaseError(err)
	}
	if project == nil {
		return utils.ErrProjectReference
	}
	return nil
}
