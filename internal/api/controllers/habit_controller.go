package controllers

import (
	"github.com/gin-gonic/gin"
	"luminous/internal/models/request_models"
	"luminous/internal/services"
	"luminous/pkg/utils"
)

type HabitController struct {
	habitService services.HabitServiceInterface
}

func NewHabitController(habitService services.HabitServiceInterface) *HabitController {
	return &HabitController{
		habitService: habitService,
	}
}

// ListHabits godoc
// @Summary List my active habits
// @Tags Habits
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /api/habits [get]
func (h *HabitController) ListHabits(c *gin.Context) {
	habits, err := h.habitService.GetUserHabits(c.Request.Context(), currentUserID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, habits, "Habits retrieved successfully")
}

func (h *HabitController) GetHabit(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	habit, err := h.habitService.GetHabit(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, habit, "Habit retrieved successfully")
}

// HabitStats godoc
// @Summary Completion state and streak per habit
// @Tags Habits
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /api/habits/stats [get]
func (h *HabitController) HabitStats(c *gin.Context) {
	stats, err := h.habitService.GetHabitStats(c.Request.Context(), currentUserID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, stats, "Habit stats retrieved successfully")
}

func (h *HabitController) CreateHabit(c *gin.Context) {
	req, err := utils.BindJSON[request_models.CreateHabitRequest](c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	habit, err := h.habitService.CreateHabit(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, habit, "Habit created successfully")
}

func (h *HabitController) UpdateHabit(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	req, err := utils.BindJSON[request_models.UpdateHabitRequest](c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	habit, err := h.habitService.UpdateHabit(c.Request.Context(), currentUserID(c), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, habit, "Habit updated successfully")
}

// DeleteHabit godoc
// @Summary Deactivate a habit
// @Description The habit is hidden from listings; its entries are kept
// @Tags Habits
// @Produce json
// @Param id path int true "Habit ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/habits/{id} [delete]
func (h *HabitController) DeleteHabit(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if err := h.habitService.DeleteHabit(c.Request.Context(), currentUserID(c), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Habit deleted successfully")
}

// HabitEntriesForHabit godoc
// @Summary Entries of one habit
// @Tags Habits
// @Produce json
// @Param id path int true "Habit ID"
// @Param from query string false "First day, YYYY-MM-DD"
// @Param to query string false "Last day, YYYY-MM-DD"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/habits/{id}/entries [get]
func (h *HabitController) HabitEntriesForHabit(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	entries, err := h.habitService.GetEntriesForHabit(c.Request.Context(), currentUserID(c), id, c.Query("from"), c.Query("to"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, entries, "Habit entries retrieved successfully")
}

// ListHabitEntries godoc
// @Summary My habit entries
// @Tags Habits
// @Produce json
// @Param date query string false "Local day, YYYY-MM-DD"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/habit-entries [get]
func (h *HabitController) ListHabitEntries(c *gin.Context) {
	entries, err := h.habitService.GetHabitEntries(c.Request.Context(), currentUserID(c), c.Query("date"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, entries, "Habit entries retrieved successfully")
}

func (h *HabitController) CreateHabitEntry(c *gin.Context) {
	req, err := utils.BindJSON[request_models.CreateHabitEntryRequest](c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	entry, err := h.habitService.CreateHabitEntry(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, entry, "Habit entry recorded")
}
