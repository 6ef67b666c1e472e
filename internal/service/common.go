package service

import (
	"context"
	"strings"

	"warehouse-dashboard/internal/apiclient"
	"warehouse-dashboard/internal/models"
	"warehouse-dashboard/internal/util"
	"warehouse-dashboard/internal/validation"

	"go.uber.org/zap"
)

// checkPayload validates payload and returns the 400 envelope when it is
// rejected, or nil when the call may proceed.
func checkPayload[T any](ctx context.Context, logger *zap.Logger, resource string, payload any) *models.APIResponse[T] {
	details := validation.Struct(payload)
	if len(details) == 0 {
		return nil
	}

	_, span := util.StartSpan(ctx, "validation.reject")
	defer span.End()

	util.ValidationFailuresTotal.WithLabelValues(resource).Inc()
	logger.Debug("Payload rejected before backend call",
		zap.String("resource", resource),
		zap.Any("errors", details))

	resp := models.ValidationFailed[T](details)
	util.RecordEnvelope(span, string(resp.Status), resp.StatusCode, resp.Message)
	return resp
}

// isDuplicate reports whether the backend rejected a write because of a
// unique constraint. The backend only says so in the message text.
func isDuplicate[T any](resp *models.APIResponse[T]) bool {
	return resp.Status == models.StatusError && strings.Contains(strings.ToLower(resp.Message), "duplicate")
}

// withFieldError replaces the errors of resp with a single field hint.
func withFieldError[T any](resp *models.APIResponse[T], field, message string) *models.APIResponse[T] {
	resp.Payload.Errors = []models.ErrorDetail{{Field: field, Message: message}}
	return resp
}

func fetch[T any](ctx context.Context, client *apiclient.Client, req apiclient.Request) *models.APIResponse[T] {
	return apiclient.Fetch[T](ctx, client, req)
}
