// Package ratelimit guards the password-reset endpoint with a per-email
// request cap. The limiter is an interface so the server can run against
// Redis (shared across instances) while tests use the in-memory variant.
package ratelimit

import (
	"context"
	"time"
)

// Defaults for the reset endpoint: 3 requests per sliding hour per email.
const (
	DefaultMaxAttempts = 3
	DefaultWindow      = time.Hour
)

// Result reports the outcome of a limiter check.
type Result struct {
	Allowed   bool
	Remaining int
	ResetTime time.Time
}

// Limiter decides whether a keyed request may proceed. Check counts the
// request; callers must not call it twice for one request.
type Limiter interface {
	Check(ctx context.Context, key string) (Result, error)
}

// Config tunes a limiter. Zero values fall back to the defaults.
type Config struct {
	MaxAttempts int
	Window      time.Duration
}

func (c Config) withDefaults() Config {
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = DefaultMaxAttempts
	}
	if c.Window <= 0 {
		c.Window = DefaultWindow
	}
	return c
}
