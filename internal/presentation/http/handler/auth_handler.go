package handler

import (
	"github.com/billerone/billerone-web/internal/application/service"
	"github.com/billerone/billerone-web/internal/presentation/http/dto/request"
	"github.com/billerone/billerone-web/internal/presentation/http/dto/response"
	"github.com/billerone/billerone-web/internal/presentation/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles user login
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Username and password are required")
		return
	}

	output, err := h.authService.Login(c.Request.Context(), &service.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Login successful", gin.H{
		"username":     output.Username,
		"access_token": output.AccessToken,
		"token_type":   "Bearer",
		"expires_in":   int(output.ExpiresIn.Seconds()),
	})
}

// Logout ends the session and discards its workspace
func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)
	if sessionID == uuid.Nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	h.authService.Logout(sessionID)
	response.OK(c, "Logout successful", nil)
}

// Me returns the signed-in user
func (h *AuthHandler) Me(c *gin.Context) {
	ws := mustWorkspace(c)
	if ws == nil {
		return
	}
	response.OK(c, "Session retrieved successfully", gin.H{
		"username":   ws.Username,
		"session_id": ws.SessionID,
	})
}
