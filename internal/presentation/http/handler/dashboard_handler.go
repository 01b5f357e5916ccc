package handler

import (
	"time"

	"github.com/billerone/billerone-web/internal/application/service"
	"github.com/billerone/billerone-web/internal/presentation/http/dto/request"
	"github.com/billerone/billerone-web/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// DashboardHandler handles dashboard and report requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetStats handles getting dashboard statistics
func (h *DashboardHandler) GetStats(c *gin.Context) {
	ws := mustWorkspace(c)
	if ws == nil {
		return
	}

	stats, err := h.dashboardService.GetDashboardStats(c.Request.Context(), ws)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Dashboard stats retrieved successfully", stats)
}

// GetSalesReport handles the sales report between ?from= and ?to=
func (h *DashboardHandler) GetSalesReport(c *gin.Context) {
	ws := mustWorkspace(c)
	if ws == nil {
		return
	}

	var req request.SalesReportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Dates must use the YYYY-MM-DD format")
		return
	}

	from := parseDay(req.From)
	to := parseDay(req.To)
	if to != nil {
		// include the whole day
		end := to.Add(24*time.Hour - time.Nanosecond)
		to = &end
	}

	report, err := h.dashboardService.GetSalesReport(c.Request.Context(), ws, from, to)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Sales report retrieved successfully", report)
}

func parseDay(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}
