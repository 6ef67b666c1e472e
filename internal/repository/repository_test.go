package repository

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"warehouse-dashboard/internal/apiclient"
	"warehouse-dashboard/internal/models"
	"warehouse-dashboard/internal/service"
	"warehouse-dashboard/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const validUUID = "8f14e45f-ceea-467a-9af0-1c2b3d4e5f60"

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) PublishResourceMutated(ctx context.Context, event *models.ResourceMutatedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func backend(t *testing.T, status int, body string) (*apiclient.Client, *atomic.Int32) {
	t.Helper()
	calls := &atomic.Int32{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return apiclient.NewClient(srv.URL, 2*time.Second), calls
}

func TestRepositoryRejectsMissingToken(t *testing.T) {
	client, calls := backend(t, http.StatusOK, `{}`)
	repo := NewProductRepository(service.NewProductService(client), nil)

	resp := repo.Delete(context.Background(), "", "p1")

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Unauthorized", resp.Message)
	assert.Equal(t, int32(0), calls.Load())
}

func TestCreatePublishesMutation(t *testing.T) {
	client, _ := backend(t, http.StatusCreated,
		`{"status":"success","status_code":201,"message":"created","payload":{"data":{"id":"p9","name":"Widget","sku":"W-1"}}}`)
	pub := new(mockPublisher)
	pub.On("PublishResourceMutated", mock.Anything, mock.MatchedBy(func(e *models.ResourceMutatedEvent) bool {
		return e.Resource == models.ResourceProducts &&
			e.Mutation == models.MutationCreate &&
			e.ResourceID == "p9" &&
			e.Actor == "ops@example.com" &&
			e.Summary == "Widget (W-1)"
	})).Return(nil)

	ctx := util.WithActor(context.Background(), "ops@example.com")
	resp := NewProductRepository(service.NewProductService(client), pub).Create(ctx, "tok",
		models.CreateProductRequest{Name: "Widget", SKU: "W-1", CategoryID: validUUID})

	require.True(t, resp.OK())
	pub.AssertExpectations(t)
}

func TestPublishFailureDoesNotFailMutation(t *testing.T) {
	client, _ := backend(t, http.StatusOK,
		`{"status":"success","status_code":200,"message":"deleted","payload":{"data":{}}}`)
	pub := new(mockPublisher)
	pub.On("PublishResourceMutated", mock.Anything, mock.Anything).Return(errors.New("kafka unavailable"))

	resp := NewCategoryRepository(service.NewCategoryService(client), pub).Delete(context.Background(), "tok", "c1")

	assert.True(t, resp.OK())
	pub.AssertNumberOfCalls(t, "PublishResourceMutated", 1)
}

func TestFailedMutationIsNotPublished(t *testing.T) {
	client, _ := backend(t, http.StatusNotFound,
		`{"status":"error","status_code":404,"message":"not found","payload":{"data":null,"errors":[]}}`)
	pub := new(mockPublisher)

	resp := NewLocationRepository(service.NewLocationService(client), pub).Delete(context.Background(), "tok", "l1")

	assert.Equal(t, 404, resp.StatusCode)
	pub.AssertNotCalled(t, "PublishResourceMutated", mock.Anything, mock.Anything)
}

func TestAuthRepositoryGuards(t *testing.T) {
	client, calls := backend(t, http.StatusOK, `{}`)
	repo := NewAuthRepository(service.NewAuthService(client))
	ctx := context.Background()

	assert.Equal(t, 401, repo.SignOut(ctx, "").StatusCode)
	assert.Equal(t, 401, repo.ChangePassword(ctx, models.ChangePasswordRequest{OldPassword: "a", NewPassword: "abcdefgh"}, "").StatusCode)
	assert.Equal(t, 401, repo.ChangeRole(ctx, models.ChangeRoleRequest{Role: "admin"}, "").StatusCode)
	assert.Equal(t, int32(0), calls.Load())
}

func TestDashboardRepositoryGuard(t *testing.T) {
	client, calls := backend(t, http.StatusOK, `{}`)

	resp := NewDashboardRepository(service.NewDashboardService(client)).Summary(context.Background(), "")

	assert.Equal(t, 401, resp.StatusCode)
	assert.Equal(t, int32(0), calls.Load())
}
