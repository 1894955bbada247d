package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/sweetline/mithas-api/internal/config"
	"github.com/sweetline/mithas-api/internal/presentation/http/dto/response"
)

// ClientRateLimiter rate limits requests per authenticated user, falling
// back to the client IP before authentication.
type ClientRateLimiter struct {
	limiters map[string]*rateLimiterEntry
	mu       sync.Mutex
	rate     rate.Limit
	burst    int
	entryTTL time.Duration
}

type rateLimiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewClientRateLimiter creates a rate limiter from the configured
// requests-per-window allowance.
func NewClientRateLimiter(cfg *config.RateLimitConfig) *ClientRateLimiter {
	perSecond := float64(cfg.Requests) / float64(cfg.Duration)
	rl := &ClientRateLimiter{
		limiters: make(map[string]*rateLimiterEntry),
		rate:     rate.Limit(perSecond),
		burst:    cfg.Requests,
		entryTTL: 10 * time.Minute,
	}
	go rl.cleanupLoop()
	return rl
}

func (rl *ClientRateLimiter) getLimiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	entry, exists := rl.limiters[key]
	if !exists {
		entry = &rateLimiterEntry{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.limiters[key] = entry
	}
	entry.lastSeen = time.Now()
	return entry.limiter
}

func (rl *ClientRateLimiter) cleanupLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		cutoff := time.Now().Add(-rl.entryTTL)
		rl.mu.Lock()
		for key, entry := range rl.limiters {
			if entry.lastSeen.Before(cutoff) {
				delete(rl.limiters, key)
			}
		}
		rl.mu.Unlock()
	}
}

// Middleware returns the gin handler enforcing the limit
func (rl *ClientRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if userID, exists := c.Get("user_id"); exists {
			if id, ok := userID.(uuid.UUID); ok {
				key = id.String()
			}
		}

		if !rl.getLimiter(key).Allow() {
			response.ErrorWithCode(c, http.StatusTooManyRequests, "Too many requests")
			c.Abort()
			return
		}
		c.Next()
	}
}
