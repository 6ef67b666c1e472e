package util

import "context"

type contextKey string

const actorKey contextKey = "actor"

// WithActor tags ctx with the email of the signed-in user performing a request.
func WithActor(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, actorKey, email)
}

// ActorFromContext returns the actor set by WithActor, or "anonymous".
func ActorFromContext(ctx context.Context) string {
	if actor, ok := ctx.Value(actorKey).(string); ok && actor != "" {
		return actor
	}
	return "anonymous"
}
