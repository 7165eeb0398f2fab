package controllers

import (
	"github.com/gin-gonic/gin"
	"luminous/internal/models/request_models"
	"luminous/internal/services"
	"luminous/pkg/utils"
)

type ChallengeController struct {
	challengeService services.ChallengeServiceInterface
}

func NewChallengeController(challengeService services.ChallengeServiceInterface) *ChallengeController {
	return &ChallengeController{
		challengeService: challengeService,
	}
}

// ListActive godoc
// @Summary Challenges open right now
// @Tags Challenges
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /api/challenges [get]
func (cc *ChallengeController) ListActive(c *gin.Context) {
	challenges, err := cc.challengeService.GetActiveChallenges(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, challenges, "Challenges retrieved successfully")
}

func (cc *ChallengeController) GetChallenge(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	challenge, err := cc.challengeService.GetChallenge(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, challenge, "Challenge retrieved successfully")
}

// Join godoc
// @Summary Join a challenge
// @Description Joining again returns the existing participation
// @Tags Challenges
// @Produce json
// @Param id path int true "Challenge ID"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/challenges/{id}/join [post]
func (cc *ChallengeController) Join(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	participation, created, err := cc.challengeService.JoinChallenge(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	message := "Joined challenge"
	if !created {
		message = "Already joined"
	}
	utils.RespondSuccess(c, participation, message)
}

func (cc *ChallengeController) Participations(c *gin.Context) {
	participations, err := cc.challengeService.GetUserParticipations(c.Request.Context(), currentUserID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, participations, "Participations retrieved successfully")
}

func (cc *ChallengeController) Status(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	status, err := cc.challengeService.GetChallengeStatus(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, status, "Status retrieved successfully")
}

// UpdateProgress godoc
// @Summary Record progress on a participation
// @Tags Challenges
// @Accept json
// @Produce json
// @Param id path int true "Participation ID"
// @Param request body request_models.UpdateChallengeProgressRequest true "Progress 0-100"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /api/challenges/participations/{id}/progress [put]
func (cc *ChallengeController) UpdateProgress(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	req, err := utils.BindJSON[request_models.UpdateChallengeProgressRequest](c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	participation, err := cc.challengeService.UpdateProgress(c.Request.Context(), currentUserID(c), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, participation, "Progress updated successfully")
}
