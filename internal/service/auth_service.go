package service

import (
	"context"
	"net/http"

	"warehouse-dashboard/internal/apiclient"
	"warehouse-dashboard/internal/models"
	"warehouse-dashboard/internal/util"

	"go.uber.org/zap"
)

// DeviceIDHeader identifies the browser a token pair is issued to.
const DeviceIDHeader = "X-Device-ID"

// AuthService handles the /auth endpoints
type AuthService struct {
	client *apiclient.Client
	logger *zap.Logger
}

func NewAuthService(client *apiclient.Client) *AuthService {
	return &AuthService{
		client: client,
		logger: util.Component("service.auth"),
	}
}

func (s *AuthService) SignUp(ctx context.Context, req models.SignupRequest) *models.APIResponse[models.SignupResponse] {
	ctx, span := util.StartSpan(ctx, "AuthService.SignUp")
	defer span.End()

	if resp := checkPayload[models.SignupResponse](ctx, s.logger, models.ResourceAuth, req); resp != nil {
		return resp
	}
	return fetch[models.SignupResponse](ctx, s.client, apiclient.Request{
		Method:   http.MethodPost,
		Path:     "/auth/signup",
		Body:     req,
		Resource: models.ResourceAuth,
	})
}

func (s *AuthService) SignIn(ctx context.Context, req models.SigninRequest, deviceID string) *models.APIResponse[models.SigninResponse] {
	ctx, span := util.StartSpan(ctx, "AuthService.SignIn")
	defer span.End()

	if resp := checkPayload[models.SigninResponse](ctx, s.logger, models.ResourceAuth, req); resp != nil {
		return resp
	}
	return fetch[models.SigninResponse](ctx, s.client, apiclient.Request{
		Method:   http.MethodPost,
		Path:     "/auth/signin",
		Headers:  map[string]string{DeviceIDHeader: deviceID},
		Body:     req,
		Resource: models.ResourceAuth,
	})
}

func (s *AuthService) RefreshToken(ctx context.Context, req models.RefreshTokenRequest, deviceID string) *models.APIResponse[models.RefreshResponse] {
	ctx, span := util.StartSpan(ctx, "AuthService.RefreshToken")
	defer span.End()

	if resp := checkPayload[models.RefreshResponse](ctx, s.logger, models.ResourceAuth, req); resp != nil {
		return resp
	}
	return fetch[models.RefreshResponse](ctx, s.client, apiclient.Request{
		Method:   http.MethodPost,
		Path:     "/auth/refresh-token",
		Headers:  map[string]string{DeviceIDHeader: deviceID},
		Body:     req,
		Resource: models.ResourceAuth,
	})
}

func (s *AuthService) ChangePassword(ctx context.Context, req models.ChangePasswordRequest, token string) *models.APIResponse[models.Empty] {
	ctx, span := util.StartSpan(ctx, "AuthService.ChangePassword")
	defer span.End()

	if resp := checkPayload[models.Empty](ctx, s.logger, models.ResourceAuth, req); resp != nil {
		return resp
	}
	return fetch[models.Empty](ctx, s.client, apiclient.Request{
		Method:   http.MethodPost,
		Path:     "/auth/change-password",
		Token:    token,
		Body:     req,
		Resource: models.ResourceAuth,
	})
}

func (s *AuthService) ChangeRole(ctx context.Context, req models.ChangeRoleRequest, token string) *models.APIResponse[models.Empty] {
	ctx, span := util.StartSpan(ctx, "AuthService.ChangeRole")
	defer span.End()

	if resp := checkPayload[models.Empty](ctx, s.logger, models.ResourceAuth, req); resp != nil {
		return resp
	}
	return fetch[models.Empty](ctx, s.client, apiclient.Request{
		Method:   http.MethodPost,
		Path:     "/auth/change-role",
		Token:    token,
		Body:     req,
		Resource: models.ResourceAuth,
	})
}

// SignOut revokes the refresh token passed as bearer.
func (s *AuthService) SignOut(ctx context.Context, refreshToken string) *models.APIResponse[models.Empty] {
	ctx, span := util.StartSpan(ctx, "AuthService.SignOut")
	defer span.End()

	return fetch[models.Empty](ctx, s.client, apiclient.Request{
		Method:   http.MethodPost,
		Path:     "/auth/signout",
		Token:    refreshToken,
		Resource: models.ResourceAuth,
	})
}
