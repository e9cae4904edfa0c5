package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sweet-moments/storefront-api/internal/observability"
	"github.com/sweet-moments/storefront-api/internal/redisclient"
	"go.uber.org/zap"
)

// FixedWindowLimiter is a fixed-window request throttle backed by Redis, so
// the window counters are shared across replicas. Keys are bucketed by
// window number; each bucket expires shortly after its window closes.
type FixedWindowLimiter struct {
	redis  *redisclient.Client
	prefix string
	limit  int
	window time.Duration
	now    func() time.Time
	logger *zap.Logger
}

// NewFixedWindowLimiter creates a limiter admitting at most limit requests
// per window for each key.
func NewFixedWindowLimiter(redis *redisclient.Client, prefix string, limit int, window time.Duration) *FixedWindowLimiter {
	return &FixedWindowLimiter{
		redis:  redis,
		prefix: prefix,
		limit:  limit,
		window: window,
		now:    time.Now,
		logger: observability.Logger(),
	}
}

// Allow reports whether a request for key is admitted in the current window.
// Redis failures fail open: availability is preferred over strictness for a
// throttle, and the outcome is logged.
func (l *FixedWindowLimiter) Allow(ctx context.Context, key string) bool {
	bucket := l.now().Unix() / int64(l.window.Seconds())
	redisKey := fmt.Sprintf("ratelimit:%s:%s:%d", l.prefix, key, bucket)

	count, err := l.redis.Incr(ctx, redisKey).Result()
	if err != nil {
		l.logger.Warn("rate limiter unavailable, allowing request",
			zap.String("tier", l.prefix),
			zap.Error(err))
		return true
	}

	if count == 1 {
		// First hit in this window; the extra window of TTL keeps the key
		// alive through clock skew between replicas.
		if err := l.redis.Expire(ctx, redisKey, l.window*2).Err(); err != nil {
			l.logger.Warn("failed to set rate limit key expiry", zap.Error(err))
		}
	}

	if count > int64(l.limit) {
		observability.RateLimitRejections.WithLabelValues(l.prefix).Inc()
		l.logger.Debug("rate limiter rejected request",
			zap.String("tier", l.prefix),
			zap.Int64("count", count),
			zap.Int("limit", l.limit))
		return false
	}

	return true
}
