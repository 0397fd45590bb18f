package ratelimiter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"barangay-health-service/internal/app/contracts"
	"barangay-health-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

// ResourceLimiter is a fixed-window counter stored in Redis. Each window gets
// its own key so counters never need to be reset.
type ResourceLimiter struct {
	redis contracts.RedisRepository
	log   *zap.Logger
	now   func() time.Time
}

func NewResourceLimiter(redis contracts.RedisRepository, log *zap.Logger) *ResourceLimiter {
	return &ResourceLimiter{
		redis: redis,
		log:   log,
		now:   time.Now,
	}
}

func (l *ResourceLimiter) Allow(ctx context.Context, group, resource string, window time.Duration, quota int) (bool, time.Duration, error) {
	if quota <= 0 {
		return true, 0, nil
	}
	if window < time.Second {
		window = time.Minute
	}

	resource = strings.ToLower(strings.TrimSpace(resource))
	group = strings.ToUpper(strings.TrimSpace(group))
	if resource == "" || group == "" {
		return false, window, nil
	}

	now := l.now().UTC()
	windowSec := int64(window / time.Second)
	windowID := now.Unix() / windowSec
	key := fmt.Sprintf(constvars.RateLimitKeyFormat, group, resource, windowID)

	count, err := l.redis.IncrementWithTTL(ctx, key, window+time.Second)
	if err != nil {
		l.log.Error("ResourceLimiter.Allow increment failed",
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return false, 0, err
	}

	if count > int64(quota) {
		nextWindowStart := time.Unix((windowID+1)*windowSec, 0)
		return false, nextWindowStart.Sub(now), nil
	}
	return true, 0, nil
}

var _ contracts.ResourceLimiter = (*ResourceLimiter)(nil)
