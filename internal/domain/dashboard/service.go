package dashboard

import "context"

type DashboardService interface {
	GetOverview(ctx context.Context, today string) (Overview, error)
}
