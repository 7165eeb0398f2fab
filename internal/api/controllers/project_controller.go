package controllers

import (
	"github.com/gin-gonic/gin"
	"luminous/internal/models/request_models"
	"luminous/internal/services"
	"luminous/pkg/utils"
)

type ProjectController struct {
	projectService services.ProjectServiceInterface
}

func NewProjectController(projectService services.ProjectServiceInterface) *ProjectController {
	return &ProjectController{
		projectService: projectService,
	}
}

// ListProjects godoc
// @Summary List my projects
// @Description Projects of the caller, most recently updated first, each with task progress
// @Tags Projects
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /api/projects [get]
func (p *ProjectController) ListProjects(c *gin.Context) {
	projects, err := p.projectService.GetUserProjects(c.Request.Context(), currentUserID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, projects, "Projects retrieved successfully")
}

// GetProject godoc
// @Summary Get a project
// @Tags Projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/projects/{id} [get]
func (p *ProjectController) GetProject(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	project, err := p.projectService.GetProject(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, project, "Project retrieved successfully")
}

// GetProjectTasks godoc
// @Summary Tasks of a project with progress
// @Tags Projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/projects/{id}/tasks [get]
func (p *ProjectController) GetProjectTasks(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	resp, err := p.projectService.GetProjectTasks(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, resp, "Tasks retrieved successfully")
}

// CreateProject godoc
// @Summary Create a project
// @Tags Projects
// @Accept json
// @Produce json
// @Param request body request_models.CreateProjectRequest true "Project"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/projects [post]
func (p *ProjectController) CreateProject(c *gin.Context) {
	req, err := utils.BindJSON[request_models.CreateProjectRequest](c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	project, err := p.projectService.CreateProject(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, project, "Project created successfully")
}

func (p *ProjectController) UpdateProject(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	req, err := utils.BindJSON[request_models.UpdateProjectRequest](c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	project, err := p.projectService.UpdateProject(c.Request.Context(), currentUserID(c), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, project, "Project updated successfully")
}

func (p *ProjectController) DeleteProject(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if err := p.projectService.DeleteProject(c.Request.Context(), currentUserID(c), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Project deleted successfully")
}
