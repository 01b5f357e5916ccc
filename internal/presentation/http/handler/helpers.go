package handler

import (
	"strconv"

	"github.com/billerone/billerone-web/internal/application/service"
	"github.com/billerone/billerone-web/pkg/apperror"
	"github.com/gin-gonic/gin"
)

// GetWorkspace extracts the session workspace from the Gin context
func GetWorkspace(c *gin.Context) *service.Workspace {
	val, exists := c.Get("workspace")
	if !exists {
		return nil
	}
	ws, ok := val.(*service.Workspace)
	if !ok {
		return nil
	}
	return ws
}

// mustWorkspace writes a 401 and returns nil when no workspace is attached.
func mustWorkspace(c *gin.Context) *service.Workspace {
	ws := GetWorkspace(c)
	if ws == nil {
		c.AbortWithStatusJSON(apperror.ErrUnauthorized.Code, gin.H{
			"success": false,
			"message": "User not authenticated",
		})
	}
	return ws
}

// parseID reads a positive integer path parameter.
func parseID(c *gin.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id < 1 {
		return 0, apperror.NewBadRequestError("Invalid " + name)
	}
	return id, nil
}
