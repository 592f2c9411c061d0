package ratelimit

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	count     int
	resetTime time.Time
}

// MemoryLimiter keeps counters in a process-local map. State is lost on
// restart and not shared between instances; use the Redis limiter in
// multi-instance deployments.
type MemoryLimiter struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry
	cfg     Config
}

func NewMemoryLimiter(cfg Config) *MemoryLimiter {
	return &MemoryLimiter{
		entries: make(map[string]*memoryEntry),
		cfg:     cfg.withDefaults(),
	}
}

func (l *MemoryLimiter) Check(ctx context.Context, key string) (Result, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	entry, ok := l.entries[key]

	// Lapsed entries are deleted, so the next request starts a fresh window.
	if ok && now.After(entry.resetTime) {
		delete(l.entries, key)
		ok = false
	}

	if !ok {
		entry = &memoryEntry{count: 1, resetTime: now.Add(l.cfg.Window)}
		l.entries[key] = entry
		return Result{Allowed: true, Remaining: l.cfg.MaxAttempts - 1, ResetTime: entry.resetTime}, nil
	}

	if entry.count >= l.cfg.MaxAttempts {
		return Result{Allowed: false, Remaining: 0, ResetTime: entry.resetTime}, nil
	}

	entry.count++
	return Result{
		Allowed:   true,
		Remaining: l.cfg.MaxAttempts - entry.count,
		ResetTime: entry.resetTime,
	}, nil
}
