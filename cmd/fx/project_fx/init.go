package project_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"luminous/internal/repositories"
	"luminous/internal/services"
)

var Module = fx.Provide(
	provideProjectRepo, provideTaskRepo, provideProjectService, provideTaskService)

func provideProjectRepo(db *gorm.DB) repositories.ProjectRepository {
	return repositories.NewProjectRepository(db)
}

func provideTaskRepo(db *gorm.DB) repositories.TaskRepository {
	return repositories.NewTaskRepository(db)
}

func provideProjectService(projectRepo repositories.ProjectRepository, taskRepo repositories.TaskRepository) services.ProjectServiceInterface {
	return services.NewProjectService(projectRepo, taskRepo)
}

func provideTaskService(taskRepo repositories.TaskRepository, projectRepo repositories.ProjectRepository) services.TaskServiceInterface {
	return services.NewTaskService(taskRepo, projectRepo)
}
