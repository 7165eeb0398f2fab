package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"luminous/pkg/middleware"
	"luminous/pkg/utils"
)

func pathID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, utils.NewValidationError(name, "must be a positive integer")
	}
	return uint(id), nil
}

func currentUserID(c *gin.Context) string {
	return c.GetString(middleware.ContextUserID)
}
