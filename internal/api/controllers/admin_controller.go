package controllers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"luminous/internal/models/request_models"
	"luminous/internal/services"
	"luminous/pkg/utils"
)

type AdminController struct {
	adminService     services.AdminServiceInterface
	challengeService services.ChallengeServiceInterface
}

func NewAdminController(adminService services.AdminServiceInterface, challengeService services.ChallengeServiceInterface) *AdminController {
	return &AdminController{
		adminService:     adminService,
		challengeService: challengeService,
	}
}

// ListUsers godoc
// @Summary All users
// @Tags Admin
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Router /api/admin/users [get]
func (a *AdminController) ListUsers(c *gin.Context) {
	users, err := a.adminService.GetAllUsers(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, users, "Users retrieved successfully")
}

// UserProfile godoc
// @Summary A user with stats and recent activity
// @Tags Admin
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/admin/users/{userId}/profile [get]
func (a *AdminController) UserProfile(c *gin.Context) {
	userID := strings.TrimSpace(c.Param("userId"))
	if userID == "" {
		utils.HandleServiceError(c, utils.NewValidationError("userId", "is required"))
		return
	}

	profile, err := a.adminService.GetUserProfile(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, profile, "Profile retrieved successfully")
}

func (a *AdminController) CreateChallenge(c *gin.Context) {
	req, err := utils.BindJSON[request_models.CreateChallengeRequest](c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	challenge, err := a.challengeService.CreateChallenge(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, challenge, "Challenge created successfully")
}
