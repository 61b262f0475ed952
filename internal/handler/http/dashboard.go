package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/hrmpro/hrm-backend-go/internal/domain/dashboard"
	"github.com/hrmpro/hrm-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	GetOverview(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{dashboardService: dashboardService}
}

// GetOverview implements DashboardHandler.
func (d *DashboardHandlerImpl) GetOverview(w http.ResponseWriter, r *http.Request) {
	today := time.Now().Format("2006-01-02")

	overview, err := d.dashboardService.GetOverview(r.Context(), today)
	if err != nil {
		slog.Error("Dashboard overview service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, overview)
}
