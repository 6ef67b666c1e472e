package repository

import (
	"context"

	"warehouse-dashboard/internal/models"
	"warehouse-dashboard/internal/service"
)

// AuthRepository mediates the /auth endpoints.
type AuthRepository interface {
	SignUp(ctx context.Context, req models.SignupRequest) *models.APIResponse[models.SignupResponse]
	SignIn(ctx context.Context, req models.SigninRequest, deviceID string) *models.APIResponse[models.SigninResponse]
	RefreshToken(ctx context.Context, req models.RefreshTokenRequest, deviceID string) *models.APIResponse[models.RefreshResponse]
	ChangePassword(ctx context.Context, req models.ChangePasswordRequest, token string) *models.APIResponse[models.Empty]
	ChangeRole(ctx context.Context, req models.ChangeRoleRequest, token string) *models.APIResponse[models.Empty]
	SignOut(ctx context.Context, token string) *models.APIResponse[models.Empty]
}

// RestAuthRepository guards the token-bearing calls and delegates to the auth service.
type RestAuthRepository struct {
	svc *service.AuthService
}

func NewAuthRepository(svc *service.AuthService) *RestAuthRepository {
	return &RestAuthRepository{svc: svc}
}

func (r *RestAuthRepository) SignUp(ctx context.Context, req models.SignupRequest) *models.APIResponse[models.SignupResponse] {
	return r.svc.SignUp(ctx, req)
}

func (r *RestAuthRepository) SignIn(ctx context.Context, req models.SigninRequest, deviceID string) *models.APIResponse[models.SigninResponse] {
	return r.svc.SignIn(ctx, req, deviceID)
}

func (r *RestAuthRepository) RefreshToken(ctx context.Context, req models.RefreshTokenRequest, deviceID string) *models.APIResponse[models.RefreshResponse] {
	return r.svc.RefreshToken(ctx, req, deviceID)
}

func (r *RestAuthRepository) ChangePassword(ctx context.Context, req models.ChangePasswordRequest, token string) *models.APIResponse[models.Empty] {
	if resp := unauthorized[models.Empty](token); resp != nil {
		return resp
	}
	return r.svc.ChangePassword(ctx, req, token)
}

func (r *RestAuthRepository) ChangeRole(ctx context.Context, req models.ChangeRoleRequest, token string) *models.APIResponse[models.Empty] {
	if resp := unauthorized[models.Empty](token); resp != nil {
		return resp
	}
	return r.svc.ChangeRole(ctx, req, token)
}

func (r *RestAuthRepository) SignOut(ctx context.Context, token string) *models.APIResponse[models.Empty] {
	if resp := unauthorized[models.Empty](token); resp != nil {
		return resp
	}
	return r.svc.SignOut(ctx, token)
}

// DashboardRepository reads the summary.
type DashboardRepository interface {
	Summary(ctx context.Context, token string) *models.APIResponse[models.DashboardSummary]
}

type RestDashboardRepository struct {
	svc *service.DashboardService
}

func NewDashboardRepository(svc *service.DashboardService) *RestDashboardRepository {
	return &RestDashboardRepository{svc: svc}
}

func (r *RestDashboardRepository) Summary(ctx context.Context, token string) *models.APIResponse[models.DashboardSummary] {
	if resp := unauthorized[models.DashboardSummary](token); resp != nil {
		return resp
	}
	return r.svc.Summary(ctx, token)
}
