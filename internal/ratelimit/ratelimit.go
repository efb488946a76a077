package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Limiter answers whether an action keyed by a string is allowed right
// now. Used to throttle OTP resends per customer email.
type Limiter interface {
	// Allow records one attempt for key and reports whether it is
	// within the configured budget.
	Allow(ctx context.Context, key string) (bool, error)

	Close() error
}

// redisLimiter implements a fixed-window counter in Redis. The first
// attempt in a window creates the counter with a TTL; the window resets
// when the key expires.
type redisLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
	logger zerolog.Logger
}

// NewRedisLimiter creates a Redis-backed fixed-window limiter and
// verifies connectivity.
func NewRedisLimiter(ctx context.Context, addr string, limit int, window time.Duration, logger zerolog.Logger) (Limiter, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	logger.Info().
		Str("addr", addr).
		Int("limit", limit).
		Dur("window", window).
		Msg("redis rate limiter initialised")

	return &redisLimiter{
		client: client,
		limit:  limit,
		window: window,
		logger: logger.With().Str("component", "rate-limiter").Logger(),
	}, nil
}

// Allow increments the window counter for key and checks the budget.
func (l *redisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := "otp-resend:" + key

	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, fmt.Errorf("failed to increment rate limit counter: %w", err)
	}

	if count == 1 {
		if err := l.client.Expire(ctx, redisKey, l.window).Err(); err != nil {
			return false, fmt.Errorf("failed to set rate limit window: %w", err)
		}
	}

	if count > int64(l.limit) {
		l.logger.Warn().
			Str("key", key).
			Int64("count", count).
			Msg("rate limit exceeded")
		return false, nil
	}

	return true, nil
}

func (l *redisLimiter) Close() error {
	return l.client.Close()
}

// noopLimiter allows everything. Used when Redis is disabled.
type noopLimiter struct{}

// NewNoopLimiter returns a limiter that never throttles.
func NewNoopLimiter() Limiter {
	return noopLimiter{}
}

func (noopLimiter) Allow(ctx context.Context, key string) (bool, error) { return true, nil }
func (noopLimiter) Close() error                                        { return nil }
