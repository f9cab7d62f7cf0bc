package requestcontext

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAccessors(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, RequestID(ctx))
	assert.Empty(t, ClientIP(ctx))

	fixed := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	ctx = WithRequestID(ctx, "req-1")
	ctx = WithClientIP(ctx, "10.0.0.7")
	ctx = WithTime(ctx, fixed)

	assert.Equal(t, "req-1", RequestID(ctx))
	assert.Equal(t, "10.0.0.7", ClientIP(ctx))
	assert.Equal(t, fixed, Now(ctx))
}

func TestNowFallsBackToWallClock(t *testing.T) {
	before := time.Now()
	assert.False(t, Now(context.Background()).Before(before))
}
