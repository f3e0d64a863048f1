package contextutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestIdentityRoundTrip(t *testing.T) {
	ctx := WithIdentity(context.Background(), Identity{UserID: "u-1", Username: "alice", Role: "employee"})
	ctx = WithRequestID(ctx, "req-1")

	id, ok := GetIdentity(ctx)
	assert.True(t, ok)
	assert.Equal(t, "alice", id.Username)

	meta := ExtractMetadata(ctx)
	assert.Equal(t, "req-1", meta.RequestID)
	assert.Equal(t, "u-1", meta.UserID)
}

func TestGetLoggerFallback(t *testing.T) {
	assert.NotNil(t, GetLogger(context.Background(), nil))

	l := zap.NewExample()
	assert.Same(t, l, GetLogger(WithLogger(context.Background(), l), nil))
}
