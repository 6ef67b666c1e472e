// Package action holds the entry points handlers call: each checks for a
// bearer token and delegates to a repository.
package action

import (
	"context"

	"warehouse-dashboard/internal/models"
	"warehouse-dashboard/internal/repository"
)

func guard[T any](token string) *models.APIResponse[T] {
	if token == "" {
		return models.Unauthorized[T]()
	}
	return nil
}

// Resource exposes the CRUD actions of one backend resource.
type Resource[C, U, D, L, Q any] struct {
	repo repository.Repository[C, U, D, L, Q]
}

func NewResource[C, U, D, L, Q any](repo repository.Repository[C, U, D, L, Q]) *Resource[C, U, D, L, Q] {
	return &Resource[C, U, D, L, Q]{repo: repo}
}

func (a *Resource[C, U, D, L, Q]) Create(ctx context.Context, token string, req C) *models.APIResponse[D] {
	if resp := guard[D](token); resp != nil {
		return resp
	}
	return a.repo.Create(ctx, token, req)
}

func (a *Resource[C, U, D, L, Q]) Get(ctx context.Context, token, id string) *models.APIResponse[D] {
	if resp := guard[D](token); resp != nil {
		return resp
	}
	return a.repo.Get(ctx, token, id)
}

func (a *Resource[C, U, D, L, Q]) Update(ctx context.Context, token, id string, req U) *models.APIResponse[D] {
	if resp := guard[D](token); resp != nil {
		return resp
	}
	return a.repo.Update(ctx, token, id, req)
}

func (a *Resource[C, U, D, L, Q]) Delete(ctx context.Context, token, id string) *models.APIResponse[models.Empty] {
	if resp := guard[models.Empty](token); resp != nil {
		return resp
	}
	return a.repo.Delete(ctx, token, id)
}

func (a *Resource[C, U, D, L, Q]) List(ctx context.Context, token string, query Q) *models.APIResponse[[]L] {
	if resp := guard[[]L](token); resp != nil {
		return resp
	}
	return a.repo.List(ctx, token, query)
}

type (
	ProductActions  = Resource[models.CreateProductRequest, models.UpdateProductRequest, models.ProductResponse, models.ProductListItem, models.ProductListRequest]
	CategoryActions = Resource[models.CreateCategoryRequest, models.UpdateCategoryRequest, models.CategoryResponse, models.CategoryListItem, models.PaginationRequest]
	LocationActions = Resource[models.CreateLocationRequest, models.UpdateLocationRequest, models.LocationResponse, models.LocationListItem, models.PaginationRequest]
	StockActions    = Resource[models.CreateStockRequest, models.UpdateStockRequest, models.StockResponse, models.StockListItem, models.PaginationRequest]
)

// Dashboard exposes the summary action.
type Dashboard struct {
	repo repository.DashboardRepository
}

func NewDashboard(repo repository.DashboardRepository) *Dashboard {
	return &Dashboard{repo: repo}
}

func (a *Dashboard) Summary(ctx context.Context, token string) *models.APIResponse[models.DashboardSummary] {
	if resp := guard[models.DashboardSummary](token); resp != nil {
		return resp
	}
	return a.repo.Summary(ctx, token)
}

// Auth exposes the account actions. Sign-up and sign-in carry no token.
type Auth struct {
	repo repository.AuthRepository
}

func NewAuth(repo repository.AuthRepository) *Auth {
	return &Auth{repo: repo}
}

func (a *Auth) SignUp(ctx context.Context, req models.SignupRequest) *models.APIResponse[models.SignupResponse] {
	return a.repo.SignUp(ctx, req)
}

func (a *Auth) SignIn(ctx context.Context, req models.SigninRequest, deviceID string) *models.APIResponse[models.SigninResponse] {
	return a.repo.SignIn(ctx, req, deviceID)
}

func (a *Auth) RefreshToken(ctx context.Context, req models.RefreshTokenRequest, deviceID string) *models.APIResponse[models.RefreshResponse] {
	return a.repo.RefreshToken(ctx, req, deviceID)
}

func (a *Auth) ChangePassword(ctx context.Context, token string, req models.ChangePasswordRequest) *models.APIResponse[models.Empty] {
	if resp := guard[models.Empty](token); resp != nil {
		return resp
	}
	return a.repo.ChangePassword(ctx, req, token)
}

func (a *Auth) ChangeRole(ctx context.Context, token string, req models.ChangeRoleRequest) *models.APIResponse[models.Empty] {
	if resp := guard[models.Empty](token); resp != nil {
		return resp
	}
	return a.repo.ChangeRole(ctx, req, token)
}

func (a *Auth) SignOut(ctx context.Context, refreshToken string) *models.APIResponse[models.Empty] {
	if resp := guard[models.Empty](refreshToken); resp != nil {
		return resp
	}
	return a.repo.SignOut(ctx, refreshToken)
}
