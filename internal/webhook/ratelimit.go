package webhook

import (
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

// RateLimiter throttles webhook deliveries per key (client IP).
// Idle keys expire from the LRU after five minutes.
type RateLimiter struct {
	mu       sync.Mutex // serializes bucket creation
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
	disabled bool
}

// NewRateLimiter creates a limiter from cfg. RequestsPerMin <= 0 disables it.
func NewRateLimiter(cfg RateLimitConfig) *RateLimiter {
	if cfg.RequestsPerMin <= 0 {
		return &RateLimiter{disabled: true}
	}

	burst := cfg.RequestsPerMin / 10
	if burst < 1 {
		burst = 1
	}

	return &RateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,          // Max 1000 unique clients
			nil,           // No eviction callback
			time.Minute*5, // TTL: 5 minutes
		),
		rate:  rate.Limit(float64(cfg.RequestsPerMin) / 60.0), // Per second
		burst: burst,
	}
}

// Allow consumes one token for key, returning ErrRateLimited when the bucket is empty.
func (rl *RateLimiter) Allow(key string) error {
	if rl.disabled {
		return nil
	}

	if !rl.limiterFor(key).Allow() {
		return fmt.Errorf("%w for %s", ErrRateLimited, key)
	}
	return nil
}

// limiterFor returns the bucket for key, creating it on first use.
func (rl *RateLimiter) limiterFor(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter
}
