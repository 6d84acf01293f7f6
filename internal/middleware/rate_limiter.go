package middleware

import (
	"context"
	"strings"
	"sync"
	"time"

	"customer-pipeline/internal/config"
	"customer-pipeline/internal/errors"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	visitorTTL      = 3 * time.Minute
	cleanupInterval = time.Minute
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter limits requests per client IP with a token bucket per visitor
type RateLimiter struct {
	enabled bool
	limit   rate.Limit
	burst   int

	mu       sync.Mutex
	visitors map[string]*visitor
	now      func() time.Time
}

// NewRateLimiter creates a per-IP rate limiter from configuration
func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	return &RateLimiter{
		enabled:  cfg.Enabled,
		limit:    rate.Limit(cfg.RequestsPerSecond),
		burst:    cfg.Burst,
		visitors: make(map[string]*visitor),
		now:      time.Now,
	}
}

// Middleware returns the echo middleware enforcing the limit
func (rl *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !rl.enabled {
				return next(c)
			}

			if !rl.getVisitor(getIP(c)).Allow() {
				traceID := GetTraceID(c)
				if traceID == "" {
					traceID = "unknown"
				}
				errorResponse := errors.NewErrorResponse(errors.SystemRateLimitExceeded, traceID)
				c.Response().Header().Set("Retry-After", "1")
				return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
			}

			return next(c)
		}
	}
}

// RunCleanup evicts idle visitors every minute until ctx is cancelled
func (rl *RateLimiter) RunCleanup(ctx context.Context) {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.cleanup()
		}
	}
}

func (rl *RateLimiter) getVisitor(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, exists := rl.visitors[ip]
	if !exists {
		limiter := rate.NewLimiter(rl.limit, rl.burst)
		rl.visitors[ip] = &visitor{limiter: limiter, lastSeen: rl.now()}
		return limiter
	}

	v.lastSeen = rl.now()
	return v.limiter
}

func (rl *RateLimiter) cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	for ip, v := range rl.visitors {
		if rl.now().Sub(v.lastSeen) > visitorTTL {
			delete(rl.visitors, ip)
		}
	}
}

func (rl *RateLimiter) visitorCount() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.visitors)
}

func getIP(c echo.Context) string {
	if xff := c.Request().Header.Get("X-Forwarded-For"); xff != "" {
		// first hop is the originating client
		client, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(client)
	}

	if xri := c.Request().Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	return c.RealIP()
}
