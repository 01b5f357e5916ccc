package middleware

import (
	"strings"

	"github.com/billerone/billerone-web/internal/application/service"
	"github.com/billerone/billerone-web/internal/presentation/http/dto/response"
	"github.com/billerone/billerone-web/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuthMiddleware validates the session token and attaches the session's
// workspace to the context
func AuthMiddleware(jwtManager *utils.JWTManager, workspaces *service.WorkspaceStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateSessionToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("session_id", claims.SessionID)
		c.Set("username", claims.Username)
		c.Set("workspace", workspaces.Get(claims.SessionID, claims.Username))

		c.Next()
	}
}

// GetSessionID returns the session id set by AuthMiddleware, or uuid.Nil.
func GetSessionID(c *gin.Context) uuid.UUID {
	val, exists := c.Get("session_id")
	if !exists {
		return uuid.Nil
	}
	id, ok := val.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return id
}
