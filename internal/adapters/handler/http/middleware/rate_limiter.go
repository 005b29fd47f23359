package middleware

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimit picks the shared Redis limiter when a client is available and
// falls back to a per-process token bucket otherwise.
func RateLimit(rdb *redis.Client, limit int, window time.Duration, logger *zap.Logger) gin.HandlerFunc {
	if rdb != nil {
		return RateLimiterMiddleware(rdb, limit, window, logger)
	}
	return LocalRateLimiterMiddleware(limit, window)
}

// RateLimiterMiddleware is a fixed-window counter per client IP.
func RateLimiterMiddleware(rdb *redis.Client, limit int, window time.Duration, logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := fmt.Sprintf("rate_limit:%s", c.ClientIP())

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			logger.Warn("rate limiter skipped", zap.Error(err))
			c.Next()
			return
		}

		if count == 1 {
			if err := rdb.Expire(ctx, key, window).Err(); err != nil {
				logger.Warn("rate limiter expire failed, dropping key", zap.Error(err))
				rdb.Del(ctx, key)
				c.Next()
				return
			}
		}

		ttl, err := rdb.TTL(ctx, key).Result()
		if err != nil || ttl < 0 {
			ttl = window
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", max(0, int64(limit)-count)))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", time.Now().Add(ttl).Unix()))

		if count > int64(limit) {
			tooManyRequests(c, ttl)
			return
		}

		c.Next()
	}
}

type ipLimiters struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	every    rate.Limit
	burst    int
}

func (l *ipLimiters) get(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	lim, ok := l.limiters[ip]
	if !ok {
		lim = rate.NewLimiter(l.every, l.burst)
		l.limiters[ip] = lim
	}
	return lim
}

// LocalRateLimiterMiddleware allows limit requests per window per client IP,
// refilled continuously.
func LocalRateLimiterMiddleware(limit int, window time.Duration) gin.HandlerFunc {
	limiters := &ipLimiters{
		limiters: make(map[string]*rate.Limiter),
		every:    rate.Every(window / time.Duration(max(1, limit))),
		burst:    max(1, limit),
	}

	return func(c *gin.Context) {
		lim := limiters.get(c.ClientIP())

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", limit))

		if !lim.Allow() {
			r := lim.Reserve()
			retryIn := r.Delay()
			r.Cancel()

			tooManyRequests(c, retryIn)
			return
		}

		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", int(lim.Tokens())))
		c.Next()
	}
}

func tooManyRequests(c *gin.Context, retryIn time.Duration) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
		"status":     "error",
		"message":    "Too many requests. Slow down!",
		"retry_in_s": int(retryIn.Seconds()),
	})
}
