package handler

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/ledgerly/ledgerly-backend/internal/middleware"
	"github.com/ledgerly/ledgerly-backend/internal/service"
)

// DashboardHandler handles dashboard-related HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
	now              func() time.Time
}

// NewDashboardHandler creates a new DashboardHandler. The summary's "current
// month" is the calendar month of now in loc.
func NewDashboardHandler(dashboardService *service.DashboardService, loc *time.Location) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		now:              localClock(loc),
	}
}

// GetSummary handles GET /api/v1/dashboard/summary.
// A request without an owner receives the zero-valued summary instead of 401.
func (h *DashboardHandler) GetSummary(c echo.Context) error {
	ownerID := middleware.GetOwnerID(c)

	summary, err := h.dashboardService.GetSummary(c.Request().Context(), ownerID, h.now())
	if err != nil {
		return handleServiceError(c, err, "dashboard summary")
	}

	return OK(c, summary)
}
