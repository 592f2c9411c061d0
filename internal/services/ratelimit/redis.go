package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisLimiter counts attempts in Redis so the cap holds across restarts
// and multiple server instances.
type RedisLimiter struct {
	client *redis.Client
	cfg    Config
}

func NewRedisLimiter(client *redis.Client, cfg Config) *RedisLimiter {
	if client == nil {
		panic("redis client is required")
	}
	return &RedisLimiter{client: client, cfg: cfg.withDefaults()}
}

func limiterKey(key string) string {
	return fmt.Sprintf("ratelimit:reset:%s", key)
}

func (l *RedisLimiter) Check(ctx context.Context, key string) (Result, error) {
	rkey := limiterKey(key)

	count, err := l.client.Incr(ctx, rkey).Result()
	if err != nil {
		return Result{}, fmt.Errorf("rate limit incr failed: %w", err)
	}

	// First request in the window owns the expiry.
	if count == 1 {
		if err := l.client.Expire(ctx, rkey, l.cfg.Window).Err(); err != nil {
			return Result{}, fmt.Errorf("rate limit expire failed: %w", err)
		}
	}

	ttl, err := l.client.TTL(ctx, rkey).Result()
	if err != nil {
		return Result{}, fmt.Errorf("rate limit ttl failed: %w", err)
	}
	if ttl < 0 {
		// Key lost its expiry somehow; reinstate the window.
		ttl = l.cfg.Window
		if err := l.client.Expire(ctx, rkey, ttl).Err(); err != nil {
			return Result{}, fmt.Errorf("rate limit expire failed: %w", err)
		}
	}
	resetTime := time.Now().Add(ttl)

	if int(count) > l.cfg.MaxAttempts {
		return Result{Allowed: false, Remaining: 0, ResetTime: resetTime}, nil
	}

	return Result{
		Allowed:   true,
		Remaining: l.cfg.MaxAttempts - int(count),
		ResetTime: resetTime,
	}, nil
}
