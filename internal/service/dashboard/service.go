package dashboard

import (
	"context"

	"github.com/hrmpro/hrm-backend-go/internal/domain/dashboard"
	"github.com/hrmpro/hrm-backend-go/internal/domain/hrm"
)

type DashboardServiceImpl struct {
	store hrm.StoreService
}

func NewDashboardService(store hrm.StoreService) dashboard.DashboardService {
	return &DashboardServiceImpl{store: store}
}

// GetOverview implements dashboard.DashboardService.
func (d *DashboardServiceImpl) GetOverview(ctx context.Context, today string) (dashboard.Overview, error) {
	if err := ctx.Err(); err != nil {
		return dashboard.Overview{}, err
	}

	doc := d.store.Snapshot()

	overview := dashboard.Overview{
		TotalEmployees: len(doc.Employees),
		Companies:      len(doc.Companies),
		Clients:        len(doc.Clients),
	}
	for _, emp := range doc.Employees {
		if emp.Status == hrm.EmployeeStatusActive {
			overview.ActiveEmployees++
		}
	}
	for _, task := range doc.ClientTasks {
		if task.Status != hrm.TaskStatusCompleted {
			overview.OpenClientTasks++
		}
	}
	for _, assignment := range doc.ShiftAssignments {
		if assignment.Date == today {
			overview.ShiftsToday++
		}
	}
	return overview, nil
}
