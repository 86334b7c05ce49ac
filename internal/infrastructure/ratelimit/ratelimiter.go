package ratelimit

import "context"

// RateLimiter gates repeated attempts at a keyed action, typically login
// and registration per client IP.
type RateLimiter interface {
	// Allow reports whether the action identified by key may proceed.
	Allow(ctx context.Context, key string) (bool, error)
}

// NoopRateLimiter always allows. Used when rate limiting is disabled.
type NoopRateLimiter struct{}

func NewNoopRateLimiter() *NoopRateLimiter {
	return &NoopRateLimiter{}
}

func (n *NoopRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	return true, nil
}
