package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aaravmahajanofficial/plantshop/internal/config"
	"github.com/redis/go-redis/v9"
)

type RateLimitResult struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

type RateLimitRepository interface {
	CheckSignInRateLimit(ctx context.Context, email string) (RateLimitResult, error)
}

type redisRateLimiter struct {
	client *redis.Client
	cfg    config.RateConfig
	now    func() time.Time
}

func NewRateLimitRepo(client *redis.Client, cfg config.RateConfig) RateLimitRepository {
	return NewRateLimitRepoWithClock(client, cfg, time.Now)
}

func NewRateLimitRepoWithClock(client *redis.Client, cfg config.RateConfig, now func() time.Time) RateLimitRepository {
	return &redisRateLimiter{client: client, cfg: cfg, now: now}
}

func SignInAttemptsKey(email string) string {
	return fmt.Sprintf("signin_attempts:%s", email)
}

// CheckSignInRateLimit records an attempt in a sliding window kept as a sorted
// set of attempt timestamps, and reports whether the attempt may proceed.
func (r *redisRateLimiter) CheckSignInRateLimit(ctx context.Context, email string) (RateLimitResult, error) {

	key := SignInAttemptsKey(email)

	at := r.now()
	now := at.Unix()
	window := int64(r.cfg.WindowSize.Seconds())
	windowStart := now - window

	pipe := r.client.Pipeline()

	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", windowStart))
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now), Member: at.UnixNano()})
	count := pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, r.cfg.WindowSize)

	if _, err := pipe.Exec(ctx); err != nil {
		slog.Error("Redis pipeline execution failed for rate limit", slog.String("key", key), slog.Any("error", err))
		return RateLimitResult{}, fmt.Errorf("redis pipeline error for rate limit check: %w", err)
	}

	attempts := count.Val()

	if attempts > r.cfg.MaxAttempts {

		scores, err := r.client.ZRangeArgsWithScores(ctx, redis.ZRangeArgs{
			Key: key, Start: 0, Stop: 0,
		}).Result()
		if err == nil && len(scores) == 0 {
			err = errors.New("no attempts recorded")
		}
		if err != nil {
			slog.Error("Failed to get oldest attempt time for rate limit", slog.String("key", key), slog.Any("error", err))
			return RateLimitResult{RetryAfter: r.cfg.WindowSize}, fmt.Errorf("failed to get oldest attempt time: %w", err)
		}

		retryAfter := max(int64(scores[0].Score)+window-now, 0)

		slog.Warn("Sign-in rate limit exceeded", slog.String("email", email), slog.Int64("attempts", attempts))
		return RateLimitResult{RetryAfter: time.Duration(retryAfter) * time.Second}, nil
	}

	return RateLimitResult{Allowed: true, Remaining: int(r.cfg.MaxAttempts - attempts)}, nil
}
