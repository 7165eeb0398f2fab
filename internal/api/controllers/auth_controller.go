package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"luminous/internal/config"
	"luminous/internal/models/request_models"
	"luminous/internal/services"
	"luminous/pkg/middleware"
	"luminous/pkg/utils"
)

type AuthController struct {
	sessionService services.SessionServiceInterface
	cfg            *config.Config
}

func NewAuthController(sessionService services.SessionServiceInterface, cfg *config.Config) *AuthController {
	return &AuthController{
		sessionService: sessionService,
		cfg:            cfg,
	}
}

// CurrentUser godoc
// @Summary Current user
// @Description Returns the authenticated user's record
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /api/auth/user [get]
func (a *AuthController) CurrentUser(c *gin.Context) {
	utils.RespondSuccess(c, middleware.CurrentUser(c), "User retrieved successfully")
}

// Login godoc
// @Summary Open a session
// @Description Exchanges an identity provider token for a session cookie
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.SessionLoginRequest true "Identity token"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /api/auth/session [post]
func (a *AuthController) Login(c *gin.Context) {
	req, err := utils.BindJSON[request_models.SessionLoginRequest](c)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	result, err := a.sessionService.Login(c.Request.Context(), req.Token)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, result.SessionID, int(a.cfg.SessionTTL.Seconds()), "/", "", a.cfg.SecureCookies, true)
	utils.RespondSuccess(c, gin.H{"user": result.User, "expiresAt": result.ExpiresAt}, "Login successful")
}

// Logout godoc
// @Summary Close the session
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /api/auth/logout [post]
func (a *AuthController) Logout(c *gin.Context) {
	sessionID, _ := c.Cookie(middleware.SessionCookieName)
	if err := a.sessionService.Logout(c.Request.Context(), sessionID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", a.cfg.SecureCookies, true)
	utils.RespondSuccess(c, nil, "Logged out")
}
