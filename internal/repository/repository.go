package repository

import (
	"context"

	"warehouse-dashboard/internal/models"
	"warehouse-dashboard/internal/util"

	"go.uber.org/zap"
)

// Repository mediates access to one backend resource. C and U are the create
// and update payloads, D the detail projection, L the list projection and Q
// the list query.
type Repository[C, U, D, L, Q any] interface {
	Create(ctx context.Context, token string, req C) *models.APIResponse[D]
	Get(ctx context.Context, token, id string) *models.APIResponse[D]
	Update(ctx context.Context, token, id string, req U) *models.APIResponse[D]
	Delete(ctx context.Context, token, id string) *models.APIResponse[models.Empty]
	List(ctx context.Context, token string, query Q) *models.APIResponse[[]L]
}

type (
	ProductRepository  = Repository[models.CreateProductRequest, models.UpdateProductRequest, models.ProductResponse, models.ProductListItem, models.ProductListRequest]
	CategoryRepository = Repository[models.CreateCategoryRequest, models.UpdateCategoryRequest, models.CategoryResponse, models.CategoryListItem, models.PaginationRequest]
	LocationRepository = Repository[models.CreateLocationRequest, models.UpdateLocationRequest, models.LocationResponse, models.LocationListItem, models.PaginationRequest]
	StockRepository    = Repository[models.CreateStockRequest, models.UpdateStockRequest, models.StockResponse, models.StockListItem, models.PaginationRequest]
)

// MutationPublisher receives an event for every mutation the backend accepted.
type MutationPublisher interface {
	PublishResourceMutated(ctx context.Context, event *models.ResourceMutatedEvent) error
}

func unauthorized[T any](token string) *models.APIResponse[T] {
	if token == "" {
		return models.Unauthorized[T]()
	}
	return nil
}

type mutationNotifier struct {
	resource  string
	publisher MutationPublisher
	logger    *zap.Logger
}

// notify publishes a mutation event. Publishing never fails the mutation.
func (n mutationNotifier) notify(ctx context.Context, mutation, id, summary string, statusCode int) {
	util.ResourceMutationsTotal.WithLabelValues(n.resource, mutation, "success").Inc()
	if n.publisher == nil {
		return
	}

	event := &models.ResourceMutatedEvent{
		Resource:   n.resource,
		Mutation:   mutation,
		ResourceID: id,
		Actor:      util.ActorFromContext(ctx),
		Summary:    summary,
		StatusCode: statusCode,
	}
	if err := n.publisher.PublishResourceMutated(ctx, event); err != nil {
		n.logger.Warn("Mutation event dropped",
			zap.String("resource", n.resource),
			zap.String("mutation", mutation),
			zap.String("resource_id", id),
			zap.Error(err))
	}
}

func (n mutationNotifier) failed(mutation string) {
	util.ResourceMutationsTotal.WithLabelValues(n.resource, mutation, "error").Inc()
}
