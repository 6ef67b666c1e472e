package service

import (
	"context"
	"net/http"

	"warehouse-dashboard/internal/apiclient"
	"warehouse-dashboard/internal/models"
	"warehouse-dashboard/internal/util"
)

// DashboardService fetches the read-only summary
type DashboardService struct {
	client *apiclient.Client
}

func NewDashboardService(client *apiclient.Client) *DashboardService {
	return &DashboardService{client: client}
}

func (s *DashboardService) Summary(ctx context.Context, token string) *models.APIResponse[models.DashboardSummary] {
	ctx, span := util.StartSpan(ctx, "DashboardService.Summary")
	defer span.End()

	return fetch[models.DashboardSummary](ctx, s.client, apiclient.Request{
		Method:   http.MethodGet,
		Path:     "/dashboard/",
		Token:    token,
		Resource: models.ResourceDashboard,
	})
}
