package controllers

import (
	"github.com/gin-gonic/gin"
	"luminous/internal/models/request_models"
	"luminous/internal/services"
	"luminous/pkg/utils"
)

type CommunityController struct {
	communityService services.CommunityServiceInterface
}

func NewCommunityController(communityService services.CommunityServiceInterface) *CommunityController {
	return &CommunityController{
		communityService: communityService,
	}
}

// ListPosts godoc
// @Summary Community feed
// @Description Newest posts from all users
// @Tags Community
// @Produce json
// @Param limit query int false "Number of posts, 1-100, default 20"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/community/posts [get]
func (cc *CommunityController) ListPosts(c *gin.Context) {
	posts, err := cc.communityService.GetCommunityPosts(c.Request.Context(), c.Query("limit"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, posts, "Posts retrieved successfully")
}

func (cc *CommunityController) MyPosts(c *gin.Context) {
	posts, err := cc.communityService.GetUserPosts(c.Request.Context(), currentUserID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, posts, "Posts retrieved successfully")
}

// CreatePost godoc
// @Summary Publish a post
// @Tags Community
// @Accept json
// @Produce json
// @Param request body request_models.CreateCommunityPostRequest true "Post"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/community/posts [post]
func (cc *CommunityController) CreatePost(c *gin.Context) {
	req, err := utils.BindJSON[request_models.CreateCommunityPostRequest](c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	post, err := cc.communityService.CreatePost(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, post, "Post created successfully")
}
