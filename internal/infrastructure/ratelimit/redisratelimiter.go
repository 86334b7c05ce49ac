package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	sharedconfig "ticketdesk/internal/shared/config"
	"ticketdesk/internal/shared/logger"
)

// RedisRateLimiter implements a sliding-window limit backed by redis sorted
// sets, with a per-minute and a per-hour window checked together.
type RedisRateLimiter struct {
	client            *redis.Client
	requestsPerMinute int
	requestsPerHour   int
}

func NewRedisRateLimiter(cfg *sharedconfig.RedisConfig, limits *sharedconfig.RateLimitConfig) (*RedisRateLimiter, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetAddr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisRateLimiter{
		client:            client,
		requestsPerMinute: limits.RequestsPerMinute,
		requestsPerHour:   limits.RequestsPerHour,
	}, nil
}

func (r *RedisRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	now := time.Now()

	allowed, err := r.checkWindow(ctx, key+":minute", time.Minute, r.requestsPerMinute, now)
	if err != nil || !allowed {
		return allowed, err
	}
	return r.checkWindow(ctx, key+":hour", time.Hour, r.requestsPerHour, now)
}

// checkWindow counts entries inside the window, records this attempt, and
// trims entries that have aged out.
func (r *RedisRateLimiter) checkWindow(ctx context.Context, key string, window time.Duration, limit int, now time.Time) (bool, error) {
	if limit <= 0 {
		return true, nil
	}

	windowStart := now.Add(-window).UnixNano()

	pipe := r.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", windowStart))
	countCmd := pipe.ZCard(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to query rate limit window: %w", err)
	}

	if countCmd.Val() >= int64(limit) {
		logger.Warn("rate limit exceeded", "key", key, "limit", limit)
		return false, nil
	}

	pipe = r.client.TxPipeline()
	pipe.ZAdd(ctx, key, redis.Z{
		Score:  float64(now.UnixNano()),
		Member: fmt.Sprintf("%d", now.UnixNano()),
	})
	pipe.Expire(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to record rate limit attempt: %w", err)
	}

	return true, nil
}

func (r *RedisRateLimiter) Close() error {
	return r.client.Close()
}
