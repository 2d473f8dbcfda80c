package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/rainwise/rainwise/internal/pkg/constants"
	"github.com/rainwise/rainwise/internal/pkg/models"
)

// CheckAndRecordRequest applies the per-email issuance quota. Each call
// within the window counts as one request; throttled calls do not consume
// quota. Store errors fail closed: no decision means no code is issued.
func (r *AuthRepo) CheckAndRecordRequest(ctx context.Context, email string) (*models.RateLimitResult, error) {
	key := fmt.Sprintf(constants.KeyOTPRateLimit, email)
	window := time.Duration(r.cfg.OTP.RateWindow) * time.Second
	maxRequests := r.cfg.OTP.MaxRequests
	now := time.Now()

	val, err := r.redisClient.Client.Get(ctx, key).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to read rate-limit window: %w", err)
	}

	// First request from this email, open a fresh window.
	if errors.Is(err, redis.Nil) {
		return r.saveWindow(ctx, key, &models.RateLimitWindow{
			Email:         email,
			WindowStartAt: now,
			RequestCount:  1,
			LastRequestAt: now,
		}, window, maxRequests)
	}

	var win models.RateLimitWindow
	if err := json.Unmarshal([]byte(val), &win); err != nil {
		return nil, fmt.Errorf("failed to decode rate-limit window: %w", err)
	}

	// Window elapsed, start counting again.
	if now.Sub(win.WindowStartAt) >= window {
		win.WindowStartAt = now
		win.RequestCount = 1
		win.LastRequestAt = now
		return r.saveWindow(ctx, key, &win, window, maxRequests)
	}

	if win.RequestCount >= maxRequests {
		retryAfter := int(win.WindowStartAt.Add(window).Sub(now).Seconds())
		if retryAfter < 1 {
			retryAfter = 1
		}
		return &models.RateLimitResult{
			Allowed:    false,
			Remaining:  0,
			RetryAfter: retryAfter,
		}, nil
	}

	win.RequestCount++
	win.LastRequestAt = now
	remaining := window - now.Sub(win.WindowStartAt)
	return r.saveWindow(ctx, key, &win, remaining, maxRequests)
}

// ResetRateLimit drops the email's window so a successful login starts the
// next cycle with a fresh quota.
func (r *AuthRepo) ResetRateLimit(ctx context.Context, email string) error {
	key := fmt.Sprintf(constants.KeyOTPRateLimit, email)
	if err := r.redisClient.Client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to reset rate-limit window: %w", err)
	}
	return nil
}

func (r *AuthRepo) saveWindow(ctx context.Context, key string, win *models.RateLimitWindow, ttl time.Duration, maxRequests int) (*models.RateLimitResult, error) {
	data, err := json.Marshal(win)
	if err != nil {
		return nil, fmt.Errorf("failed to encode rate-limit window: %w", err)
	}

	if err := r.redisClient.Client.Set(ctx, key, data, ttl).Err(); err != nil {
		return nil, fmt.Errorf("failed to store rate-limit window: %w", err)
	}

	return &models.RateLimitResult{
		Allowed:   true,
		Remaining: maxRequests - win.RequestCount,
	}, nil
}
