package service

import (
	"context"
	"net/http"

	"warehouse-dashboard/internal/apiclient"
	"warehouse-dashboard/internal/models"
	"warehouse-dashboard/internal/util"

	"go.uber.org/zap"
)

const categoriesPath = "/product-categories"

// CategoryService handles product category calls
type CategoryService struct {
	client *apiclient.Client
	logger *zap.Logger
}

func NewCategoryService(client *apiclient.Client) *CategoryService {
	return &CategoryService{
		client: client,
		logger: util.Component("service.categories"),
	}
}

func (s *CategoryService) Create(ctx context.Context, token string, req models.CreateCategoryRequest) *models.APIResponse[models.CategoryResponse] {
	ctx, span := util.StartSpan(ctx, "CategoryService.Create")
	defer span.End()

	if resp := checkPayload[models.CategoryResponse](ctx, s.logger, models.ResourceCategories, req); resp != nil {
		return resp
	}
	return fetch[models.CategoryResponse](ctx, s.client, apiclient.Request{
		Method:   http.MethodPost,
		Path:     categoriesPath,
		Token:    token,
		Body:     req,
		Resource: models.ResourceCategories,
	})
}

func (s *CategoryService) Get(ctx context.Context, token, id string) *models.APIResponse[models.CategoryResponse] {
	ctx, span := util.StartSpan(ctx, "CategoryService.Get")
	defer span.End()

	return fetch[models.CategoryResponse](ctx, s.client, apiclient.Request{
		Method:   http.MethodGet,
		Path:     apiclient.ResourcePath(categoriesPath, id),
		Token:    token,
		Resource: models.ResourceCategories,
	})
}

func (s *CategoryService) Update(ctx context.Context, token, id string, req models.UpdateCategoryRequest) *models.APIResponse[models.CategoryResponse] {
	ctx, span := util.StartSpan(ctx, "CategoryService.Update")
	defer span.End()

	if resp := checkPayload[models.CategoryResponse](ctx, s.logger, models.ResourceCategories, req); resp != nil {
		return resp
	}
	return fetch[models.CategoryResponse](ctx, s.client, apiclient.Request{
		Method:   http.MethodPut,
		Path:     apiclient.ResourcePath(categoriesPath, id),
		Token:    token,
		Body:     req,
		Resource: models.ResourceCategories,
	})
}

func (s *CategoryService) Delete(ctx context.Context, token, id string) *models.APIResponse[models.Empty] {
	ctx, span := util.StartSpan(ctx, "CategoryService.Delete")
	defer span.End()

	return fetch[models.Empty](ctx, s.client, apiclient.Request{
		Method:   http.MethodDelete,
		Path:     apiclient.ResourcePath(categoriesPath, id),
		Token:    token,
		Resource: models.ResourceCategories,
	})
}

func (s *CategoryService) List(ctx context.Context, token string, query models.PaginationRequest) *models.APIResponse[[]models.CategoryListItem] {
	ctx, span := util.StartSpan(ctx, "CategoryService.List")
	defer span.End()

	query = query.WithDefaults()
	if resp := checkPayload[[]models.CategoryListItem](ctx, s.logger, models.ResourceCategories, query); resp != nil {
		return resp
	}
	return fetch[[]models.CategoryListItem](ctx, s.client, apiclient.Request{
		Method:   http.MethodGet,
		Path:     categoriesPath,
		Token:    token,
		Query:    apiclient.PageQuery(query.Page, query.Limit),
		Resource: models.ResourceCategories,
	})
}
