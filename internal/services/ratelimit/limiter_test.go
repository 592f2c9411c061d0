package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLimiterCap(t *testing.T) {
	ctx := context.Background()
	limiter := NewMemoryLimiter(Config{})

	for i := 0; i < DefaultMaxAttempts; i++ {
		result, err := limiter.Check(ctx, "user@example.com")
		require.NoError(t, err)
		assert.True(t, result.Allowed, "attempt %d should be allowed", i+1)
		assert.Equal(t, DefaultMaxAttempts-i-1, result.Remaining)
	}

	result, err := limiter.Check(ctx, "user@example.com")
	require.NoError(t, err)
	assert.False(t, result.Allowed, "attempt beyond the cap must be denied")
	assert.Equal(t, 0, result.Remaining)
	assert.InDelta(t, time.Hour.Seconds(), time.Until(result.ResetTime).Seconds(), 5,
		"reset time should be about an hour out")
}

func TestMemoryLimiterKeysAreIndependent(t *testing.T) {
	ctx := context.Background()
	limiter := NewMemoryLimiter(Config{MaxAttempts: 1})

	first, err := limiter.Check(ctx, "a@example.com")
	require.NoError(t, err)
	assert.True(t, first.Allowed)

	denied, err := limiter.Check(ctx, "a@example.com")
	require.NoError(t, err)
	assert.False(t, denied.Allowed)

	other, err := limiter.Check(ctx, "b@example.com")
	require.NoError(t, err)
	assert.True(t, other.Allowed, "a different key has its own window")
}

func TestMemoryLimiterWindowLapse(t *testing.T) {
	ctx := context.Background()
	limiter := NewMemoryLimiter(Config{MaxAttempts: 1, Window: 20 * time.Millisecond})

	first, err := limiter.Check(ctx, "user@example.com")
	require.NoError(t, err)
	assert.True(t, first.Allowed)

	denied, err := limiter.Check(ctx, "user@example.com")
	require.NoError(t, err)
	assert.False(t, denied.Allowed)

	time.Sleep(30 * time.Millisecond)

	fresh, err := limiter.Check(ctx, "user@example.com")
	require.NoError(t, err)
	assert.True(t, fresh.Allowed, "a lapsed window starts fresh")
	assert.Equal(t, 0, fresh.Remaining)
}

func TestConfigDefaults(t *testing.T) {
	cfg := Config{}.withDefaults()
	assert.Equal(t, DefaultMaxAttempts, cfg.MaxAttempts)
	assert.Equal(t, DefaultWindow, cfg.Window)

	cfg = Config{MaxAttempts: 10, Window: time.Minute}.withDefaults()
	assert.Equal(t, 10, cfg.MaxAttempts)
	assert.Equal(t, time.Minute, cfg.Window)
}
