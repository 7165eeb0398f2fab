package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"luminous/internal/models/db_models"
	"luminous/internal/services"
	"luminous/pkg/utils"
)

const (
	SessionCookieName = "luminous.sid"

	ContextUserID = "user_id"
	ContextUser   = "user"
)

// SessionAuthMiddleware accepts the session cookie or an
// "Authorization: Bearer <identity token>" header.
func SessionAuthMiddleware(sessions services.SessionServiceInterface) gin.HandlerFunc {

	return func(c *gin.Context) {
		sessionID, _ := c.Cookie(SessionCookieName)

		var bearer string
		if authHeader := c.GetHeader("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
			bearer = strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		}

		if sessionID == "" && bearer == "" {
			utils.HandleServiceError(c, utils.ErrUnauthenticated)
			c.Abort()
			return
		}

		user, err := sessions.Authenticate(c.Request.Context(), sessionID, bearer)
		if err != nil {
			utils.HandleServiceError(c, err)
			c.Abort()
			return
		}

		c.Set(ContextUserID, user.ID)
		c.Set(ContextUser, user)
		c.Next()
	}
}

// AdminOnly must run after SessionAuthMiddleware.
func AdminOnly(admins services.AdminServiceInterface) gin.HandlerFunc {

	return func(c *gin.Context) {
		if !admins.IsAdmin(CurrentUser(c)) {
			utils.HandleServiceError(c, utils.ErrForbidden)
			c.Abort()
			return
		}

		c.Next()
	}
}

func CurrentUser(c *gin.Context) *db_models.User {
	if v, ok := c.Get(ContextUser); ok {
		if user, ok := v.(*db_models.User); ok {
			return user
		}
	}
	return nil
}
