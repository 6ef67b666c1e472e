package screen

import (
	"context"
	"net/http"
	"net/url"
	"testing"
	"time"

	"warehouse-dashboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockStockBackend struct {
	mock.Mock
}

func (m *mockStockBackend) Create(ctx context.Context, token string, req models.CreateStockRequest) *models.APIResponse[models.StockResponse] {
	return m.Called(ctx, token, req).Get(0).(*models.APIResponse[models.StockResponse])
}

func (m *mockStockBackend) Get(ctx context.Context, token, id string) *models.APIResponse[models.StockResponse] {
	return m.Called(ctx, token, id).Get(0).(*models.APIResponse[models.StockResponse])
}

func (m *mockStockBackend) Update(ctx context.Context, token, id string, req models.UpdateStockRequest) *models.APIResponse[models.StockResponse] {
	return m.Called(ctx, token, id, req).Get(0).(*models.APIResponse[models.StockResponse])
}

func (m *mockStockBackend) Delete(ctx context.Context, token, id string) *models.APIResponse[models.Empty] {
	return m.Called(ctx, token, id).Get(0).(*models.APIResponse[models.Empty])
}

func (m *mockStockBackend) List(ctx context.Context, token string, query models.PaginationRequest) *models.APIResponse[[]models.StockListItem] {
	return m.Called(ctx, token, query).Get(0).(*models.APIResponse[[]models.StockListItem])
}

func seededStocks() *ListState[models.StockListItem] {
	return &ListState[models.StockListItem]{
		Items: []models.StockListItem{
			{ID: "s1", ProductName: "Widget", WarehouseName: "North", Quantity: 5, Status: models.StockAvailable},
			{ID: "s2", ProductName: "Gadget", WarehouseName: "South", Quantity: 0, Status: models.StockOutOfStock},
		},
		Page:  1,
		Limit: 10,
	}
}

func TestLoadSeedsState(t *testing.T) {
	backend := new(mockStockBackend)
	rows := []models.StockListItem{{ID: "s1"}}
	resp := models.Success(http.StatusOK, "ok", rows)
	resp.Payload.Pagination = &models.Pagination{CurrentPage: 2, TotalPages: 3, TotalItems: 21}
	backend.On("List", mock.Anything, "tok", models.PaginationRequest{Page: 2, Limit: 10}).Return(resp)

	state, got := NewStockScreen(backend).Load(context.Background(), "tok", 2, 10)

	assert.Same(t, resp, got)
	assert.Equal(t, rows, state.Items)
	assert.Equal(t, 21, state.Pagination.TotalItems)
	assert.Equal(t, 2, state.Page)
	backend.AssertExpectations(t)
}

func TestSubmitCreateAppendsOne(t *testing.T) {
	backend := new(mockStockBackend)
	now := time.Now().UTC()
	backend.On("Create", mock.Anything, "tok", models.CreateStockRequest{
		ProductID:           "p3",
		WarehouseLocationID: "w3",
		Quantity:            models.IntPtr(7),
	}).Return(models.Success(http.StatusCreated, "Stock created", models.StockResponse{
		ID: "s3", ProductID: "p3", WarehouseLocationID: "w3", Quantity: 7, Status: models.StockAvailable, UpdatedAt: now,
	}))

	state := seededStocks()
	toast, drawer := NewStockScreen(backend).Submit(context.Background(), "tok", state, Operation{Mode: ModeCreate}, url.Values{
		"product_id":            {"p3"},
		"warehouse_location_id": {"w3"},
		"quantity":              {"7"},
	})

	assert.Equal(t, Toast{Kind: ToastSuccess, Message: "Stock created"}, toast)
	assert.Nil(t, drawer)
	require.Len(t, state.Items, 3)
	assert.Equal(t, "s3", state.Items[2].ID)
	assert.Equal(t, 7, state.Items[2].Quantity)
	backend.AssertExpectations(t)
}

func TestSubmitCreateFailureReopensDrawer(t *testing.T) {
	backend := new(mockStockBackend)
	backend.On("Create", mock.Anything, "tok", mock.Anything).Return(models.Fail[models.StockResponse](
		http.StatusConflict, "duplicate key",
		models.ErrorDetail{Field: "product_id", Message: "Duplicate stock entry for product and warehouse"},
	))

	state := seededStocks()
	toast, drawer := NewStockScreen(backend).Submit(context.Background(), "tok", state, Operation{Mode: ModeCreate}, url.Values{
		"product_id":            {"p1"},
		"warehouse_location_id": {"w1"},
		"quantity":              {"1"},
	})

	assert.Equal(t, ToastError, toast.Kind)
	assert.Equal(t, "duplicate key", toast.Message)
	assert.Equal(t, http.StatusUnprocessableEntity, StatusFor(toast))
	assert.Len(t, state.Items, 2)

	require.NotNil(t, drawer)
	assert.Equal(t, "Add Stock", drawer.Title)
	product := fieldByName(t, drawer.Fields, "product_id")
	assert.Equal(t, "p1", product.Value)
	assert.Equal(t, "Duplicate stock entry for product and warehouse", product.Error)
}

func TestSubmitCreateBadNumberSkipsBackend(t *testing.T) {
	backend := new(mockStockBackend)

	toast, drawer := NewStockScreen(backend).Submit(context.Background(), "tok", seededStocks(), Operation{Mode: ModeCreate}, url.Values{
		"quantity": {"lots"},
	})

	assert.Equal(t, models.MessageValidationFailed, toast.Message)
	require.NotNil(t, drawer)
	assert.NotEmpty(t, fieldByName(t, drawer.Fields, "quantity").Error)
	backend.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitEditMergesRow(t *testing.T) {
	backend := new(mockStockBackend)
	backend.On("Update", mock.Anything, "tok", "s2", models.UpdateStockRequest{Quantity: models.IntPtr(3)}).
		Return(models.Success(http.StatusOK, "Stock updated", models.StockResponse{
			ID: "s2", Quantity: 3, Status: models.StockLow,
		}))

	state := seededStocks()
	toast, _ := NewStockScreen(backend).Submit(context.Background(), "tok", state, Operation{Mode: ModeEdit, ID: "s2"}, url.Values{
		"quantity": {"3"},
	})

	assert.True(t, toast.OK())
	require.Len(t, state.Items, 2)
	assert.Equal(t, 3, state.Items[1].Quantity)
	assert.Equal(t, models.StockLow, state.Items[1].Status)
	assert.Equal(t, "Gadget", state.Items[1].ProductName)
	assert.Equal(t, 5, state.Items[0].Quantity)
}

func TestSubmitEditUnknownRow(t *testing.T) {
	backend := new(mockStockBackend)

	toast, drawer := NewStockScreen(backend).Submit(context.Background(), "tok", seededStocks(), Operation{Mode: ModeEdit, ID: "nope"}, url.Values{})

	assert.Equal(t, ToastError, toast.Kind)
	assert.Nil(t, drawer)
	backend.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitDeleteRemovesOne(t *testing.T) {
	backend := new(mockStockBackend)
	backend.On("Delete", mock.Anything, "tok", "s1").Return(models.Success(http.StatusOK, "", models.Empty{}))

	state := seededStocks()
	toast, _ := NewStockScreen(backend).Submit(context.Background(), "tok", state, Operation{Mode: ModeDelete, ID: "s1"}, nil)

	assert.Equal(t, Toast{Kind: ToastSuccess, Message: "Stock deleted"}, toast)
	assert.Equal(t, []string{"s2"}, ids(state.Items))
}

func TestSubmitDeleteUnauthorizedKeepsRows(t *testing.T) {
	backend := new(mockStockBackend)
	backend.On("Delete", mock.Anything, "", "s1").Return(models.Unauthorized[models.Empty]())

	state := seededStocks()
	toast, drawer := NewStockScreen(backend).Submit(context.Background(), "", state, Operation{Mode: ModeDelete, ID: "s1"}, nil)

	assert.Equal(t, models.MessageUnauthorized, toast.Message)
	assert.Len(t, state.Items, 2)
	require.NotNil(t, drawer)
	assert.Empty(t, drawer.Fields)
}

func TestDrawerModes(t *testing.T) {
	s := NewStockScreen(nil)
	state := seededStocks()

	create, ok := s.Drawer(Operation{Mode: ModeCreate}, state)
	require.True(t, ok)
	assert.Equal(t, "Manage product stock details", create.Description)
	assert.Equal(t, "Add Stock", create.SubmitLabel)
	assert.Len(t, create.Fields, 3)

	edit, ok := s.Drawer(Operation{Mode: ModeEdit, ID: "s1"}, state)
	require.True(t, ok)
	assert.Equal(t, "Edit Stock", edit.Title)
	assert.Equal(t, "Save Changes", edit.SubmitLabel)
	require.Len(t, edit.Fields, 1)
	assert.Equal(t, "5", edit.Fields[0].Value)

	del, ok := s.Drawer(Operation{Mode: ModeDelete, ID: "s2"}, state)
	require.True(t, ok)
	assert.Equal(t, "Are you sure you want to delete this stock entry?", del.Description)
	assert.Equal(t, "Confirm Delete", del.SubmitLabel)
	assert.Empty(t, del.Fields)

	_, ok = s.Drawer(Operation{Mode: ModeEdit, ID: "missing"}, state)
	assert.False(t, ok)
}

func TestCategoryDrawerDefaults(t *testing.T) {
	s := NewCategoryScreen(nil)
	d, ok := s.Drawer(Operation{Mode: ModeDelete, ID: "c1"}, &ListState[models.CategoryListItem]{
		Items: []models.CategoryListItem{{ID: "c1", Name: "Tools"}},
	})

	require.True(t, ok)
	assert.Equal(t, "Delete Category", d.Title)
	assert.Equal(t, "Are you sure you want to delete this category?", d.Description)
}
