package service

import (
	"context"
	"net/http"

	"warehouse-dashboard/internal/apiclient"
	"warehouse-dashboard/internal/models"
	"warehouse-dashboard/internal/util"

	"go.uber.org/zap"
)

const stocksPath = "/product-stocks"

// Duplicate hint attached to stock creation.
const DuplicateStockMessage = "Duplicate stock entry for product and warehouse"

// StockService handles product stock calls
type StockService struct {
	client *apiclient.Client
	logger *zap.Logger
}

func NewStockService(client *apiclient.Client) *StockService {
	return &StockService{
		client: client,
		logger: util.Component("service.stocks"),
	}
}

// Create validates and creates a stock row. The backend allows one row per
// product and warehouse.
func (s *StockService) Create(ctx context.Context, token string, req models.CreateStockRequest) *models.APIResponse[models.StockResponse] {
	ctx, span := util.StartSpan(ctx, "StockService.Create")
	defer span.End()

	if resp := checkPayload[models.StockResponse](ctx, s.logger, models.ResourceStocks, req); resp != nil {
		return resp
	}

	resp := fetch[models.StockResponse](ctx, s.client, apiclient.Request{
		Method:   http.MethodPost,
		Path:     stocksPath,
		Token:    token,
		Body:     req,
		Resource: models.ResourceStocks,
	})
	if isDuplicate(resp) {
		return withFieldError(resp, "product_id", DuplicateStockMessage)
	}
	return resp
}

func (s *StockService) Get(ctx context.Context, token, id string) *models.APIResponse[models.StockResponse] {
	ctx, span := util.StartSpan(ctx, "StockService.Get")
	defer span.End()

	return fetch[models.StockResponse](ctx, s.client, apiclient.Request{
		Method:   http.MethodGet,
		Path:     apiclient.ResourcePath(stocksPath, id),
		Token:    token,
		Resource: models.ResourceStocks,
	})
}

func (s *StockService) Update(ctx context.Context, token, id string, req models.UpdateStockRequest) *models.APIResponse[models.StockResponse] {
	ctx, span := util.StartSpan(ctx, "StockService.Update")
	defer span.End()

	if resp := checkPayload[models.StockResponse](ctx, s.logger, models.ResourceStocks, req); resp != nil {
		return resp
	}
	return fetch[models.StockResponse](ctx, s.client, apiclient.Request{
		Method:   http.MethodPut,
		Path:     apiclient.ResourcePath(stocksPath, id),
		Token:    token,
		Body:     req,
		Resource: models.ResourceStocks,
	})
}

func (s *StockService) Delete(ctx context.Context, token, id string) *models.APIResponse[models.Empty] {
	ctx, span := util.StartSpan(ctx, "StockService.Delete")
	defer span.End()

	return fetch[models.Empty](ctx, s.client, apiclient.Request{
		Method:   http.MethodDelete,
		Path:     apiclient.ResourcePath(stocksPath, id),
		Token:    token,
		Resource: models.ResourceStocks,
	})
}

func (s *StockService) List(ctx context.Context, token string, query models.PaginationRequest) *models.APIResponse[[]models.StockListItem] {
	ctx, span := util.StartSpan(ctx, "StockService.List")
	defer span.End()

	query = query.WithDefaults()
	if resp := checkPayload[[]models.StockListItem](ctx, s.logger, models.ResourceStocks, query); resp != nil {
		return resp
	}
	return fetch[[]models.StockListItem](ctx, s.client, apiclient.Request{
		Method:   http.MethodGet,
		Path:     stocksPath,
		Token:    token,
		Query:    apiclient.PageQuery(query.Page, query.Limit),
		Resource: models.ResourceStocks,
	})
}
