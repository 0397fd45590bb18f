package contracts

import (
	"context"
	"time"
)

type ResourceLimiter interface {
	// Allow counts one hit for resource within group. When the quota for the
	// current window is spent it reports false and the wait until the next one.
	Allow(ctx context.Context, group, resource string, window time.Duration, quota int) (allowed bool, retryAfter time.Duration, err error)
}
