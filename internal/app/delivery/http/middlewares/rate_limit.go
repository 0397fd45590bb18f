package middlewares

import (
	"net/http"
	"time"

	"barangay-health-service/internal/pkg/exceptions"
	"barangay-health-service/internal/pkg/utils"

	"github.com/go-chi/httprate"
)

// CreateRateLimiters returns the global per-IP limiter and the stricter one
// applied to the credential endpoints.
func (m *Middlewares) CreateRateLimiters() (globalLimiter, authLimiter func(next http.Handler) http.Handler) {
	keyByIP := httprate.WithKeyFuncs(httprate.KeyByIP)
	limitHandler := httprate.WithLimitHandler(m.rateLimitExceeded)
	globalLimiter = httprate.Limit(m.InternalConfig.App.MaxRequests, time.Second, keyByIP, limitHandler)
	authLimiter = httprate.Limit(m.InternalConfig.App.MaxAuthRequestsPerMinute, time.Minute, keyByIP, limitHandler)
	return globalLimiter, authLimiter
}

func (m *Middlewares) rateLimitExceeded(w http.ResponseWriter, r *http.Request) {
	utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests())
}
