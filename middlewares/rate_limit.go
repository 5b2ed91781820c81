package middlewares

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimiter is a per-identifier fixed-window counter. It guards the plan
// generation endpoint, where every request costs a provider round trip.
type RateLimiter struct {
	mu       sync.Mutex
	attempts map[string]int
	lastTry  map[string]time.Time
	window   time.Duration
	maxTries int
}

func NewRateLimiter(window time.Duration, maxTries int) *RateLimiter {
	return &RateLimiter{
		attempts: make(map[string]int),
		lastTry:  make(map[string]time.Time),
		window:   window,
		maxTries: maxTries,
	}
}

func (rl *RateLimiter) Allow(identifier string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()

	// Drop identifiers whose window has expired so the maps stay bounded
	// by the set of recently active users
	for id, last := range rl.lastTry {
		if now.Sub(last) > rl.window {
			delete(rl.lastTry, id)
			delete(rl.attempts, id)
		}
	}

	lastTry, exists := rl.lastTry[identifier]

	// Reset the counter once the window has passed
	if !exists || now.Sub(lastTry) > rl.window {
		rl.attempts[identifier] = 1
		rl.lastTry[identifier] = now
		return true
	}

	if rl.attempts[identifier] >= rl.maxTries {
		return false
	}

	rl.attempts[identifier]++
	rl.lastTry[identifier] = now
	return true
}

// RateLimit rejects requests beyond the per-user budget with a 429. It runs
// after AuthMiddleware so the user id is already on the context.
func RateLimit(rl *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetUint("userID")
		if !rl.Allow(fmt.Sprintf("%d", userID)) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many generation requests, try again later"})
			return
		}
		c.Next()
	}
}
