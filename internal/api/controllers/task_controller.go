package controllers

import (
	"github.com/gin-gonic/gin"
	"luminous/internal/models/request_models"
	"luminous/internal/services"
	"luminous/pkg/utils"
)

type TaskController struct {
	taskService services.TaskServiceInterface
}

func NewTaskController(taskService services.TaskServiceInterface) *TaskController {
	return &TaskController{
		taskService: taskService,
	}
}

// ListTasks godoc
// @Summary List my tasks
// @Tags Tasks
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /api/tasks [get]
func (t *TaskController) ListTasks(c *gin.Context) {
	tasks, err := t.taskService.GetUserTasks(c.Request.Context(), currentUserID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, tasks, "Tasks retrieved successfully")
}

func (t *TaskController) GetTask(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	task, err := t.taskService.GetTask(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, task, "Task retrieved successfully")
}

// CreateTask godoc
// @Summary Create a task
// @Description The referenced project must belong to the caller
// @Tags Tasks
// @Accept json
// @Produce json
// @Param request body request_models.CreateTaskRequest true "Task"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/tasks [post]
func (t *TaskController) CreateTask(c *gin.Context) {
	req, err := utils.BindJSON[request_models.CreateTaskRequest](c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	task, err := t.taskService.CreateTask(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, task, "Task created successfully")
}

// UpdateTask godoc
// @Summary Patch a task
// @Tags Tasks
// @Accept json
// @Produce json
// @Param id path int true "Task ID"
// @Param request body request_models.UpdateTaskRequest true "Fields to change"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/tasks/{id} [put]
func (t *TaskController) UpdateTask(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	req, err := utils.BindJSON[request_models.UpdateTaskRequest](c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	task, err := t.taskService.UpdateTask(c.Request.Context(), currentUserID(c), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, task, "Task updated successfully")
}

func (t *TaskController) DeleteTask(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if err := t.taskService.DeleteTask(c.Request.Context(), currentUserID(c), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Task deleted successfully")
}
