package handler

import (
	"github.com/billerone/billerone-web/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// NoticeHandler serves the transient notices of a session
type NoticeHandler struct{}

// NewNoticeHandler creates a new notice handler
func NewNoticeHandler() *NoticeHandler {
	return &NoticeHandler{}
}

// List returns the notices that have not expired
func (h *NoticeHandler) List(c *gin.Context) {
	ws := mustWorkspace(c)
	if ws == nil {
		return
	}
	response.OK(c, "Notices retrieved successfully", ws.Notices.Active())
}

// Dismiss hides a notice before it expires
func (h *NoticeHandler) Dismiss(c *gin.Context) {
	ws := mustWorkspace(c)
	if ws == nil {
		return
	}
	ws.Notices.Dismiss(c.Param("id"))
	response.OK(c, "Notice dismissed", nil)
}
