package repository

import (
	"context"
	"fmt"

	"warehouse-dashboard/internal/models"
	"warehouse-dashboard/internal/service"
	"warehouse-dashboard/internal/util"
)

// RestRepository backs a Repository with a service talking to the REST backend.
type RestRepository[C, U, D, L, Q any] struct {
	svc      Repository[C, U, D, L, Q]
	idOf     func(D) string
	describe func(D) string
	notifier mutationNotifier
}

func newRest[C, U, D, L, Q any](
	resource string,
	svc Repository[C, U, D, L, Q],
	publisher MutationPublisher,
	idOf func(D) string,
	describe func(D) string,
) *RestRepository[C, U, D, L, Q] {
	return &RestRepository[C, U, D, L, Q]{
		svc:      svc,
		idOf:     idOf,
		describe: describe,
		notifier: mutationNotifier{
			resource:  resource,
			publisher: publisher,
			logger:    util.Component("repository." + resource),
		},
	}
}

func (r *RestRepository[C, U, D, L, Q]) Create(ctx context.Context, token string, req C) *models.APIResponse[D] {
	if resp := unauthorized[D](token); resp != nil {
		return resp
	}
	resp := r.svc.Create(ctx, token, req)
	if !resp.OK() {
		r.notifier.failed(models.MutationCreate)
		return resp
	}
	r.notifier.notify(ctx, models.MutationCreate, r.idOf(resp.Payload.Data), r.describe(resp.Payload.Data), resp.StatusCode)
	return resp
}

func (r *RestRepository[C, U, D, L, Q]) Get(ctx context.Context, token, id string) *models.APIResponse[D] {
	if resp := unauthorized[D](token); resp != nil {
		return resp
	}
	return r.svc.Get(ctx, token, id)
}

func (r *RestRepository[C, U, D, L, Q]) Update(ctx context.Context, token, id string, req U) *models.APIResponse[D] {
	if resp := unauthorized[D](token); resp != nil {
		return resp
	}
	resp := r.svc.Update(ctx, token, id, req)
	if !resp.OK() {
		r.notifier.failed(models.MutationUpdate)
		return resp
	}
	r.notifier.notify(ctx, models.MutationUpdate, id, r.describe(resp.Payload.Data), resp.StatusCode)
	return resp
}

func (r *RestRepository[C, U, D, L, Q]) Delete(ctx context.Context, token, id string) *models.APIResponse[models.Empty] {
	if resp := unauthorized[models.Empty](token); resp != nil {
		return resp
	}
	resp := r.svc.Delete(ctx, token, id)
	if !resp.OK() {
		r.notifier.failed(models.MutationDelete)
		return resp
	}
	r.notifier.notify(ctx, models.MutationDelete, id, "", resp.StatusCode)
	return resp
}

func (r *RestRepository[C, U, D, L, Q]) List(ctx context.Context, token string, query Q) *models.APIResponse[[]L] {
	if resp := unauthorized[[]L](token); resp != nil {
		return resp
	}
	return r.svc.List(ctx, token, query)
}

// NewProductRepository creates the REST product repository
func NewProductRepository(svc *service.ProductService, publisher MutationPublisher) *RestRepository[models.CreateProductRequest, models.UpdateProductRequest, models.ProductResponse, models.ProductListItem, models.ProductListRequest] {
	return newRest[models.CreateProductRequest, models.UpdateProductRequest, models.ProductResponse, models.ProductListItem, models.ProductListRequest](
		models.ResourceProducts, svc, publisher,
		func(d models.ProductResponse) string { return d.ID },
		func(d models.ProductResponse) string { return d.Name + " (" + d.SKU + ")" },
	)
}

// NewCategoryRepository creates the REST category repository
func NewCategoryRepository(svc *service.CategoryService, publisher MutationPublisher) *RestRepository[models.CreateCategoryRequest, models.UpdateCategoryRequest, models.CategoryResponse, models.CategoryListItem, models.PaginationRequest] {
	return newRest[models.CreateCategoryRequest, models.UpdateCategoryRequest, models.CategoryResponse, models.CategoryListItem, models.PaginationRequest](
		models.ResourceCategories, svc, publisher,
		func(d models.CategoryResponse) string { return d.ID },
		func(d models.CategoryResponse) string { return d.Name },
	)
}

// NewLocationRepository creates the REST warehouse location repository
func NewLocationRepository(svc *service.LocationService, publisher MutationPublisher) *RestRepository[models.CreateLocationRequest, models.UpdateLocationRequest, models.LocationResponse, models.LocationListItem, models.PaginationRequest] {
	return newRest[models.CreateLocationRequest, models.UpdateLocationRequest, models.LocationResponse, models.LocationListItem, models.PaginationRequest](
		models.ResourceLocations, svc, publisher,
		func(d models.LocationResponse) string { return d.ID },
		func(d models.LocationResponse) string { return d.Name },
	)
}

// NewStockRepository creates the REST product stock repository
func NewStockRepository(svc *service.StockService, publisher MutationPublisher) *RestRepository[models.CreateStockRequest, models.UpdateStockRequest, models.StockResponse, models.StockListItem, models.PaginationRequest] {
	return newRest[models.CreateStockRequest, models.UpdateStockRequest, models.StockResponse, models.StockListItem, models.PaginationRequest](
		models.ResourceStocks, svc, publisher,
		func(d models.StockResponse) string { return d.ID },
		func(d models.StockResponse) string { return fmt.Sprintf("quantity %d, %s", d.Quantity, d.Status) },
	)
}
