package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"healthsmart-chatbot/pkg/response"
)

const (
	rateLimiterMaxClients = 1000
	rateLimiterTTL        = 5 * time.Minute
)

var errRateLimited = errors.New("too many requests, please slow down")

// rateLimiter holds one token bucket per client, expiring idle clients.
type rateLimiter struct {
	mu       sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](rateLimiterMaxClients, nil, rateLimiterTTL),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    burst,
	}
}

func (rl *rateLimiter) Allow(key string) error {
	rl.mu.Lock()
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	rl.mu.Unlock()

	if !limiter.Allow() {
		return fmt.Errorf("rate limit exceeded for %s", key)
	}
	return nil
}

// RateLimit rejects clients exceeding the configured per-minute budget with
// 429 in the response envelope. It is a no-op when rate limiting is disabled.
func (mw Middleware) RateLimit() gin.HandlerFunc {
	return mw.rateLimit(func(c *gin.Context) {
		response.ErrorWithStatus(c, http.StatusTooManyRequests, errRateLimited)
	})
}

// FlatRateLimit is RateLimit for routes answering {"error": ...} instead of
// the envelope. Both share the same per-client budget.
func (mw Middleware) FlatRateLimit() gin.HandlerFunc {
	return mw.rateLimit(func(c *gin.Context) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": errRateLimited.Error()})
	})
}

func (mw Middleware) rateLimit(reject func(c *gin.Context)) gin.HandlerFunc {
	return func(c *gin.Context) {
		if mw.limiter == nil {
			c.Next()
			return
		}

		if err := mw.limiter.Allow(c.ClientIP()); err != nil {
			mw.l.Warnf(c.Request.Context(), "middleware.RateLimit: %v", err)
			reject(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
