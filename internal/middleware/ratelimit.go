package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"luna-assistant/pkg/response"
)

const (
	// maxTrackedClients bounds the limiter table; idle clients age out.
	maxTrackedClients = 1000
	limiterTTL        = 5 * time.Minute
)

// rateLimiter keeps one token bucket per client with auto-cleanup.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	if requestsPerMin <= 0 {
		requestsPerMin = 120
	}
	burst := requestsPerMin / 4
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](maxTrackedClients, nil, limiterTTL),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    burst,
	}
}

func (rl *rateLimiter) allow(key string) bool {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}

// RateLimit throttles by client IP.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.limiter.allow(c.ClientIP()) {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: throttled %s", c.ClientIP())
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
