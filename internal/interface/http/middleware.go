package http

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/styling-advisor/internal/infra/config"
	apperrors "github.com/yanqian/styling-advisor/pkg/errors"
)

// errorHandlingMiddleware renders the last recorded error as {"error":{"code","message"}}.
func errorHandlingMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		body := describeError(err)
		level := slog.LevelWarn
		if body.status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		logger.Log(c.Request.Context(), level, "request failed",
			"code", body.code,
			"status", body.status,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"error", err,
		)

		c.JSON(body.status, gin.H{
			"error": gin.H{
				"code":    body.code,
				"message": body.message,
			},
		})
	}
}

// rateLimitMiddleware throttles each client IP with its own token bucket.
func rateLimitMiddleware(cfg config.RateLimitConfig, logger *slog.Logger) gin.HandlerFunc {
	if !cfg.Enabled || cfg.RequestsPerMinute <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	limiter := newClientLimiter(cfg)
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if limiter.allow(ip) {
			c.Next()
			return
		}
		logger.Warn("rate limit exceeded", "ip", ip, "path", c.Request.URL.Path)
		fail(c, apperrors.Wrap(codeRateLimited, "too many requests", nil))
	}
}

type bucket struct {
	tokens float64
	seen   time.Time
}

// take refills b for the time since it was last seen and spends one token if it can.
func (b *bucket) take(now time.Time, perSecond, capacity float64) bool {
	if elapsed := now.Sub(b.seen).Seconds(); elapsed > 0 {
		b.tokens = min(capacity, b.tokens+elapsed*perSecond)
	}
	b.seen = now
	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

type clientLimiter struct {
	mu        sync.Mutex
	buckets   map[string]*bucket
	perSecond float64
	capacity  float64
	idle      time.Duration
	lastSweep time.Time
	now       func() time.Time
}

func newClientLimiter(cfg config.RateLimitConfig) *clientLimiter {
	return &clientLimiter{
		buckets:   make(map[string]*bucket),
		perSecond: float64(cfg.RequestsPerMinute) / 60,
		capacity:  float64(cfg.Burst),
		idle:      5 * time.Minute,
		now:       time.Now,
	}
}

func (l *clientLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) >= l.idle {
		l.sweep(now)
	}
	b, ok := l.buckets[ip]
	if !ok {
		b = &bucket{tokens: l.capacity, seen: now}
		l.buckets[ip] = b
	}
	return b.take(now, l.perSecond, l.capacity)
}

// sweep drops buckets idle for longer than l.idle. Callers hold l.mu.
func (l *clientLimiter) sweep(now time.Time) {
	for ip, b := range l.buckets {
		if now.Sub(b.seen) > l.idle {
			delete(l.buckets, ip)
		}
	}
	l.lastSweep = now
}
