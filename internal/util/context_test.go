package util

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActorFromContext(t *testing.T) {
	assert.Equal(t, "anonymous", ActorFromContext(context.Background()))

	ctx := WithActor(context.Background(), "ops@example.com")
	assert.Equal(t, "ops@example.com", ActorFromContext(ctx))

	assert.Equal(t, "anonymous", ActorFromContext(WithActor(context.Background(), "")))
}
