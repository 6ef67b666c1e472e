package service

import (
	"context"
	"net/http"

	"warehouse-dashboard/internal/apiclient"
	"warehouse-dashboard/internal/models"
	"warehouse-dashboard/internal/util"

	"go.uber.org/zap"
)

const locationsPath = "/warehouse-locations"

// LocationService handles warehouse location calls
type LocationService struct {
	client *apiclient.Client
	logger *zap.Logger
}

func NewLocationService(client *apiclient.Client) *LocationService {
	return &LocationService{
		client: client,
		logger: util.Component("service.locations"),
	}
}

func (s *LocationService) Create(ctx context.Context, token string, req models.CreateLocationRequest) *models.APIResponse[models.LocationResponse] {
	ctx, span := util.StartSpan(ctx, "LocationService.Create")
	defer span.End()

	if resp := checkPayload[models.LocationResponse](ctx, s.logger, models.ResourceLocations, req); resp != nil {
		return resp
	}
	return fetch[models.LocationResponse](ctx, s.client, apiclient.Request{
		Method:   http.MethodPost,
		Path:     locationsPath,
		Token:    token,
		Body:     req,
		Resource: models.ResourceLocations,
	})
}

func (s *LocationService) Get(ctx context.Context, token, id string) *models.APIResponse[models.LocationResponse] {
	ctx, span := util.StartSpan(ctx, "LocationService.Get")
	defer span.End()

	return fetch[models.LocationResponse](ctx, s.client, apiclient.Request{
		Method:   http.MethodGet,
		Path:     apiclient.ResourcePath(locationsPath, id),
		Token:    token,
		Resource: models.ResourceLocations,
	})
}

func (s *LocationService) Update(ctx context.Context, token, id string, req models.UpdateLocationRequest) *models.APIResponse[models.LocationResponse] {
	ctx, span := util.StartSpan(ctx, "LocationService.Update")
	defer span.End()

	if resp := checkPayload[models.LocationResponse](ctx, s.logger, models.ResourceLocations, req); resp != nil {
		return resp
	}
	return fetch[models.LocationResponse](ctx, s.client, apiclient.Request{
		Method:   http.MethodPut,
		Path:     apiclient.ResourcePath(locationsPath, id),
		Token:    token,
		Body:     req,
		Resource: models.ResourceLocations,
	})
}

func (s *LocationService) Delete(ctx context.Context, token, id string) *models.APIResponse[models.Empty] {
	ctx, span := util.StartSpan(ctx, "LocationService.Delete")
	defer span.End()

	return fetch[models.Empty](ctx, s.client, apiclient.Request{
		Method:   http.MethodDelete,
		Path:     apiclient.ResourcePath(locationsPath, id),
		Token:    token,
		Resource: models.ResourceLocations,
	})
}

// List fetches available locations, oldest first.
func (s *LocationService) List(ctx context.Context, token string, query models.PaginationRequest) *models.APIResponse[[]models.LocationListItem] {
	ctx, span := util.StartSpan(ctx, "LocationService.List")
	defer span.End()

	query = query.WithDefaults()
	if resp := checkPayload[[]models.LocationListItem](ctx, s.logger, models.ResourceLocations, query); resp != nil {
		return resp
	}

	q := apiclient.PageQuery(query.Page, query.Limit)
	q.Set("sort_by", "created_at")
	q.Set("order", "asc")
	q.Set("status", "available")

	return fetch[[]models.LocationListItem](ctx, s.client, apiclient.Request{
		Method:   http.MethodGet,
		Path:     locationsPath,
		Token:    token,
		Query:    q,
		Resource: models.ResourceLocations,
	})
}
