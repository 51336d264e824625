package service

import (
	"context"

	"github.com/inohub/prospect-console/internal/adapter"
	"github.com/inohub/prospect-console/internal/logger"
	"github.com/inohub/prospect-console/models"
)

type dashboardService struct {
	adapter adapter.APIGateway
	logger  *logger.Logger
}

// NewDashboardService constructs a [DashboardService] backed by the provided
// gateway.
func NewDashboardService(gateway adapter.APIGateway, logger *logger.Logger) DashboardService {
	return &dashboardService{adapter: gateway, logger: logger}
}

// Stats implements [DashboardService]. The statistics are precomputed
// server-side; the console renders them without further aggregation.
func (d *dashboardService) Stats(ctx context.Context) (models.DashboardStats, error) {
	return d.adapter.DashboardStats(ctx)
}
