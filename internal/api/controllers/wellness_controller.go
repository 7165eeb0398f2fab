package controllers

import (
	"github.com/gin-gonic/gin"
	"luminous/internal/services"
	"luminous/pkg/utils"
)

type WellnessController struct {
	wellnessService services.WellnessServiceInterface
}

func NewWellnessController(wellnessService services.WellnessServiceInterface) *WellnessController {
	return &WellnessController{
		wellnessService: wellnessService,
	}
}

// Daily godoc
// @Summary Quote, sessions and breathing exercise for today
// @Tags Wellness
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /api/wellness/daily [get]
func (w *WellnessController) Daily(c *gin.Context) {
	utils.RespondSuccess(c, w.wellnessService.DailyBundle(c.Request.Context()), "Wellness content retrieved successfully")
}

func (w *WellnessController) Quote(c *gin.Context) {
	utils.RespondSuccess(c, w.wellnessService.DailyQuote(c.Request.Context()), "Quote retrieved successfully")
}

func (w *WellnessController) MindfulnessQuote(c *gin.Context) {
	utils.RespondSuccess(c, w.wellnessService.MindfulnessQuote(c.Request.Context()), "Quote retrieved successfully")
}

func (w *WellnessController) Sessions(c *gin.Context) {
	utils.RespondSuccess(c, w.wellnessService.RecommendedSessions(), "Sessions retrieved successfully")
}

func (w *WellnessController) Breathing(c *gin.Context) {
	utils.RespondSuccess(c, w.wellnessService.BreathingExercise(), "Breathing exercise retrieved successfully")
}

// Mood godoc
// @Summary Activity suggestion for the weather
// @Description Unknown or missing weather falls back to a general suggestion
// @Tags Wellness
// @Produce json
// @Param weather query string false "sunny, rainy, cloudy, snowy or stormy"
// @Success 200 {object} utils.APIResponse
// @Router /api/wellness/mood [get]
func (w *WellnessController) Mood(c *gin.Context) {
	utils.RespondSuccess(c, w.wellnessService.MoodRecommendation(c.Query("weather")), "Recommendation retrieved successfully")
}
