package service

import (
	"context"
	"net/http"

	"warehouse-dashboard/internal/apiclient"
	"warehouse-dashboard/internal/models"
	"warehouse-dashboard/internal/util"

	"go.uber.org/zap"
)

const productsPath = "/products"

// Duplicate hint attached to product writes.
const DuplicateSKUMessage = "Duplicate SKU or key violation"

// ProductService handles product calls against the backend
type ProductService struct {
	client *apiclient.Client
	logger *zap.Logger
}

// NewProductService creates a new product service
func NewProductService(client *apiclient.Client) *ProductService {
	return &ProductService{
		client: client,
		logger: util.Component("service.products"),
	}
}

// Create validates and creates a product
func (s *ProductService) Create(ctx context.Context, token string, req models.CreateProductRequest) *models.APIResponse[models.ProductResponse] {
	ctx, span := util.StartSpan(ctx, "ProductService.Create")
	defer span.End()

	if resp := checkPayload[models.ProductResponse](ctx, s.logger, models.ResourceProducts, req); resp != nil {
		return resp
	}

	resp := fetch[models.ProductResponse](ctx, s.client, apiclient.Request{
		Method:   http.MethodPost,
		Path:     productsPath,
		Token:    token,
		Body:     req,
		Resource: models.ResourceProducts,
	})
	if isDuplicate(resp) {
		return withFieldError(resp, "sku", DuplicateSKUMessage)
	}
	return resp
}

// Get fetches one product
func (s *ProductService) Get(ctx context.Context, token, id string) *models.APIResponse[models.ProductResponse] {
	ctx, span := util.StartSpan(ctx, "ProductService.Get")
	defer span.End()

	return fetch[models.ProductResponse](ctx, s.client, apiclient.Request{
		Method:   http.MethodGet,
		Path:     apiclient.ResourcePath(productsPath, id),
		Token:    token,
		Resource: models.ResourceProducts,
	})
}

// Update validates and updates a product
func (s *ProductService) Update(ctx context.Context, token, id string, req models.UpdateProductRequest) *models.APIResponse[models.ProductResponse] {
	ctx, span := util.StartSpan(ctx, "ProductService.Update")
	defer span.End()

	if resp := checkPayload[models.ProductResponse](ctx, s.logger, models.ResourceProducts, req); resp != nil {
		return resp
	}

	resp := fetch[models.ProductResponse](ctx, s.client, apiclient.Request{
		Method:   http.MethodPut,
		Path:     apiclient.ResourcePath(productsPath, id),
		Token:    token,
		Body:     req,
		Resource: models.ResourceProducts,
	})
	if isDuplicate(resp) {
		return withFieldError(resp, "sku", DuplicateSKUMessage)
	}
	return resp
}

// Delete removes a product
func (s *ProductService) Delete(ctx context.Context, token, id string) *models.APIResponse[models.Empty] {
	ctx, span := util.StartSpan(ctx, "ProductService.Delete")
	defer span.End()

	return fetch[models.Empty](ctx, s.client, apiclient.Request{
		Method:   http.MethodDelete,
		Path:     apiclient.ResourcePath(productsPath, id),
		Token:    token,
		Resource: models.ResourceProducts,
	})
}

// List fetches one page of products. Filters are only sent when set.
func (s *ProductService) List(ctx context.Context, token string, query models.ProductListRequest) *models.APIResponse[[]models.ProductListItem] {
	ctx, span := util.StartSpan(ctx, "ProductService.List")
	defer span.End()

	query = query.WithDefaults()
	if resp := checkPayload[[]models.ProductListItem](ctx, s.logger, models.ResourceProducts, query); resp != nil {
		return resp
	}

	q := apiclient.PageQuery(query.Page, query.Limit)
	for key, value := range map[string]string{
		"search":      query.Search,
		"sort_by":     query.SortBy,
		"order":       query.Order,
		"category_id": query.CategoryID,
		"status":      query.Status,
	} {
		if value != "" {
			q.Set(key, value)
		}
	}

	return fetch[[]models.ProductListItem](ctx, s.client, apiclient.Request{
		Method:   http.MethodGet,
		Path:     productsPath,
		Token:    token,
		Query:    q,
		Resource: models.ResourceProducts,
	})
}
